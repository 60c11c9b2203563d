// Package reports covers the export surface: date-range search over
// submissions and the simulated report/certificate generation step. No real
// document format exists; generation resolves with a success result after a
// fixed delay, and overlapping generations are independent.
package reports

import (
	"errors"
	"fmt"
	"time"

	"cropconnect/models"
	"cropconnect/workflow"

	"github.com/google/uuid"
)

// ErrNotApproved is returned when a certificate is requested for a
// submission that has not been approved.
var ErrNotApproved = errors.New("submission is not approved")

// ErrNoSelection is returned when a certificate is requested without a
// selected submission.
var ErrNoSelection = errors.New("no submission selected")

// Generation kinds
const (
	KindReport      = "report"
	KindCertificate = "certificate"
)

// Row is a display-ready search result.
type Row struct {
	ID          uint      `json:"id"`
	CropType    string    `json:"type"`
	Stage       string    `json:"stage"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
	DisplayName string    `json:"display_name"`
}

// ValidateRange checks that both bounds of the search window are present.
func ValidateRange(start, end *time.Time) error {
	fields := make(map[string]string)
	if start == nil {
		fields["start"] = "Start date is required!"
	}
	if end == nil {
		fields["end"] = "End date is required!"
	}
	if len(fields) > 0 {
		return &workflow.ValidationError{Fields: fields}
	}
	return nil
}

// BuildRows converts records into display rows with a formatted date label.
func BuildRows(updates []models.CropUpdate) []Row {
	rows := make([]Row, 0, len(updates))
	for _, u := range updates {
		rows = append(rows, Row{
			ID:          u.ID,
			CropType:    u.CropType,
			Stage:       u.Stage,
			Status:      u.Status,
			SubmittedAt: u.CreatedAt,
			DisplayName: fmt.Sprintf("%s - %s (%s)", u.CropType, u.Stage, u.CreatedAt.Format("Jan 2, 2006")),
		})
	}
	return rows
}

// CertificateEligible checks that a submission is selected and approved.
func CertificateEligible(update *models.CropUpdate) error {
	if update == nil {
		return ErrNoSelection
	}
	if update.Status != models.StatusApproved {
		return ErrNotApproved
	}
	return nil
}

// Result is the outcome of one simulated generation.
type Result struct {
	JobID string `json:"job_id"`
	Kind  string `json:"kind"`
}

// Generator produces simulated documents. Each Generate call is
// independent; nothing guards against overlap and nothing can be
// cancelled mid-flight.
type Generator struct {
	Delay time.Duration
}

// Generate starts a simulated generation and returns a channel that
// resolves with the result once the delay elapses.
func (g Generator) Generate(kind string) <-chan Result {
	done := make(chan Result, 1)
	jobID := uuid.NewString()
	go func() {
		time.Sleep(g.Delay)
		done <- Result{JobID: jobID, Kind: kind}
	}()
	return done
}
