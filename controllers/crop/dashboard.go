package cropController

import (
	"time"

	"cropconnect/aggregation"
	"cropconnect/middleware"
	"cropconnect/models"

	"github.com/gofiber/fiber/v2"
)

// DashboardMetrics returns total and per-status counts with percentages
// for the acting user's scope.
func DashboardMetrics(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	updates, err := fetchScoped(user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch metrics!", nil)
	}

	metrics := aggregation.Count(updates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Metrics fetched successfully!", fiber.Map{
		"counts": metrics,
		"percentages": fiber.Map{
			"pending":  metrics.PercentOf(metrics.Pending),
			"approved": metrics.PercentOf(metrics.Approved),
			"rejected": metrics.PercentOf(metrics.Rejected),
		},
	})
}

// SubmissionChart returns the monthly or seasonal series for the acting
// user's scope.
func SubmissionChart(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	rangeType, _ := c.Locals("chartRange").(string)

	updates, err := fetchScoped(user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chart data!", nil)
	}

	var series []aggregation.ChartPoint
	if rangeType == "seasonal" {
		series = aggregation.SeasonalSeries(updates)
	} else {
		series = aggregation.MonthlySeries(updates)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chart data fetched successfully!", fiber.Map{
		"range":  rangeType,
		"series": series,
	})
}

// CropCalendar returns planting and harvest events, optionally narrowed to
// a single day.
func CropCalendar(c *fiber.Ctx) error {
	user, ok := c.Locals("actingUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	updates, err := fetchScoped(user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch calendar events!", nil)
	}

	events := aggregation.CalendarEvents(updates)
	if day, ok := c.Locals("calendarDate").(time.Time); ok {
		events = aggregation.EventsOn(events, day)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Calendar events fetched successfully!", events)
}
