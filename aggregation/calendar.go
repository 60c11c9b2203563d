package aggregation

import (
	"fmt"
	"time"

	"cropconnect/models"
)

// Calendar event types
const (
	EventPlanting = "planting"
	EventHarvest  = "harvest"
)

// cropColors maps known crop types to a color tag for calendar rendering.
var cropColors = map[string]string{
	"Wheat":    "amber",
	"Rice":     "green",
	"Corn":     "yellow",
	"Soybeans": "emerald",
	"Cotton":   "blue",
}

const defaultCropColor = "gray"

// CropColor returns the color tag for a crop type, gray when unrecognized.
func CropColor(cropType string) string {
	if color, ok := cropColors[cropType]; ok {
		return color
	}
	return defaultCropColor
}

// CalendarEvent is a planting or harvest marker derived from a crop update.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CropType  string    `json:"type"`
	Date      time.Time `json:"date"`
	EventType string    `json:"event_type"`
	Color     string    `json:"color"`
}

// CalendarEvents emits a planting event for each record with a planted date
// and a harvest event for each record with an expected harvest date.
func CalendarEvents(updates []models.CropUpdate) []CalendarEvent {
	var events []CalendarEvent
	for _, u := range updates {
		if u.PlantedDate != nil {
			events = append(events, CalendarEvent{
				ID:        fmt.Sprintf("%d-planting", u.ID),
				Title:     fmt.Sprintf("%s Planting", u.CropType),
				CropType:  u.CropType,
				Date:      *u.PlantedDate,
				EventType: EventPlanting,
				Color:     CropColor(u.CropType),
			})
		}
		if u.ExpectedHarvestDate != nil {
			events = append(events, CalendarEvent{
				ID:        fmt.Sprintf("%d-harvest", u.ID),
				Title:     fmt.Sprintf("%s Expected Harvest", u.CropType),
				CropType:  u.CropType,
				Date:      *u.ExpectedHarvestDate,
				EventType: EventHarvest,
				Color:     CropColor(u.CropType),
			})
		}
	}
	return events
}

// EventsOn filters events to those falling on the same calendar day as the
// given date, ignoring time-of-day.
func EventsOn(events []CalendarEvent, day time.Time) []CalendarEvent {
	matched := make([]CalendarEvent, 0)
	for _, e := range events {
		if sameDay(e.Date, day) {
			matched = append(matched, e)
		}
	}
	return matched
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
