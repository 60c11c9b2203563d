package cropValidators

import (
	"strings"
	"time"

	"cropconnect/middleware"
	"cropconnect/models"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// CreateCropRequest carries a parsed submission. Required-field checks live
// in the workflow package; this layer only parses the payload and rejects
// malformed dates.
type CreateCropRequest struct {
	CropType            string
	Stage               string
	Quantity            float64
	PlantedDate         *time.Time
	ExpectedHarvestDate *time.Time
	Notes               string
}

type ReviewRequest struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

func CreateCropUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			Type                string  `json:"type"`
			Stage               string  `json:"stage"`
			Quantity            float64 `json:"quantity"`
			PlantedDate         string  `json:"plantedDate"`
			ExpectedHarvestDate string  `json:"expectedHarvestDate"`
			Notes               string  `json:"notes"`
		})

		if err := c.BodyParser(body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData := &CreateCropRequest{
			CropType: strings.TrimSpace(body.Type),
			Stage:    strings.TrimSpace(body.Stage),
			Quantity: body.Quantity,
			Notes:    strings.TrimSpace(body.Notes),
		}

		if body.PlantedDate != "" {
			parsed, err := time.Parse(dateLayout, body.PlantedDate)
			if err != nil {
				errors["plantedDate"] = "Planted date must be in YYYY-MM-DD format!"
			} else {
				reqData.PlantedDate = &parsed
			}
		}
		if body.ExpectedHarvestDate != "" {
			parsed, err := time.Parse(dateLayout, body.ExpectedHarvestDate)
			if err != nil {
				errors["expectedHarvestDate"] = "Expected harvest date must be in YYYY-MM-DD format!"
			} else {
				reqData.ExpectedHarvestDate = &parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCropUpdate", reqData)
		return c.Next()
	}
}

func ReviewCropUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		if reqData.Status != models.StatusApproved && reqData.Status != models.StatusRejected {
			errors["status"] = "Status must be approved or rejected!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// ChartQuery validates the chart range selector.
func ChartQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rangeType := c.Query("range", "monthly")
		if rangeType != "monthly" && rangeType != "seasonal" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"range": "Range must be monthly or seasonal!",
			})
		}
		c.Locals("chartRange", rangeType)
		return c.Next()
	}
}

// CalendarQuery validates the optional calendar date filter.
func CalendarQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Query("date"); raw != "" {
			parsed, err := time.Parse(dateLayout, raw)
			if err != nil {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"date": "Date must be in YYYY-MM-DD format!",
				})
			}
			c.Locals("calendarDate", parsed)
		}
		return c.Next()
	}
}
