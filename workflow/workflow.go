// Package workflow holds the crop-update lifecycle rules: which fields a
// submission must carry, and which status transitions are allowed. The
// rules are pure so controllers persist only after they pass.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"cropconnect/models"
)

// ErrInvalidTransition is returned when a status change is attempted on a
// record that is no longer pending. Approved and rejected are terminal;
// a farmer deletes and resubmits instead of reopening.
var ErrInvalidTransition = errors.New("crop update is not pending")

// ErrNotFound is returned when the referenced record is absent at the time
// of the mutation.
var ErrNotFound = errors.New("record not found")

// ValidationError carries per-field messages for invalid input, collected
// before any store call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}

// SubmissionInput is the farmer-supplied portion of a crop update.
type SubmissionInput struct {
	CropType            string
	Stage               string
	Quantity            float64
	PlantedDate         *time.Time
	ExpectedHarvestDate *time.Time
	Notes               string
}

// NewCropUpdate validates the submission and builds a pending record.
func NewCropUpdate(farmerID uint, in SubmissionInput) (models.CropUpdate, error) {
	fields := make(map[string]string)

	if in.CropType == "" {
		fields["type"] = "Crop type is required!"
	}
	if in.Stage == "" {
		fields["stage"] = "Growth stage is required!"
	}
	if in.Quantity <= 0 {
		fields["quantity"] = "Quantity must be greater than 0!"
	}
	if in.PlantedDate == nil {
		fields["plantedDate"] = "Planted date is required!"
	}
	if in.ExpectedHarvestDate == nil {
		fields["expectedHarvestDate"] = "Expected harvest date is required!"
	}

	if len(fields) > 0 {
		return models.CropUpdate{}, &ValidationError{Fields: fields}
	}

	return models.CropUpdate{
		FarmerID:            farmerID,
		CropType:            in.CropType,
		Stage:               in.Stage,
		Quantity:            in.Quantity,
		PlantedDate:         in.PlantedDate,
		ExpectedHarvestDate: in.ExpectedHarvestDate,
		Notes:               in.Notes,
		Status:              models.StatusPending,
	}, nil
}

// CanReview reports whether the role is allowed to approve or reject.
func CanReview(role string) bool {
	return role == models.RoleEmployee || role == models.RoleAdmin
}

// ApplyStatus moves a pending record to approved or rejected. Feedback is
// kept only for rejections. The record is left untouched on error.
func ApplyStatus(update *models.CropUpdate, newStatus, feedback string) error {
	if newStatus != models.StatusApproved && newStatus != models.StatusRejected {
		return &ValidationError{Fields: map[string]string{
			"status": "Status must be approved or rejected!",
		}}
	}
	if update.Status != models.StatusPending {
		return ErrInvalidTransition
	}

	update.Status = newStatus
	if newStatus == models.StatusRejected {
		update.Feedback = feedback
	}
	return nil
}
