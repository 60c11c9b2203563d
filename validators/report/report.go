package reportValidators

import (
	"time"

	"cropconnect/middleware"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// SearchRequest carries the parsed date range. Either bound may be nil;
// presence is checked by the reports package.
type SearchRequest struct {
	Start *time.Time
	End   *time.Time
}

type CertificateRequest struct {
	SubmissionID uint `json:"submissionId"`
}

func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SearchRequest)
		errors := make(map[string]string)

		if raw := c.Query("start"); raw != "" {
			parsed, err := time.Parse(dateLayout, raw)
			if err != nil {
				errors["start"] = "Start date must be in YYYY-MM-DD format!"
			} else {
				reqData.Start = &parsed
			}
		}
		if raw := c.Query("end"); raw != "" {
			parsed, err := time.Parse(dateLayout, raw)
			if err != nil {
				errors["end"] = "End date must be in YYYY-MM-DD format!"
			} else {
				// Inclusive upper bound: extend to the end of the day.
				endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
				reqData.End = &endOfDay
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSearch", reqData)
		return c.Next()
	}
}

func Certificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CertificateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedCertificate", reqData)
		return c.Next()
	}
}
