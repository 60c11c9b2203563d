package aggregation

import (
	"testing"
	"time"

	"cropconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &ts
}

func TestCalendarEventsEmitsPlantingAndHarvest(t *testing.T) {
	update := models.CropUpdate{
		CropType:            "Wheat",
		PlantedDate:         datePtr(t, "2024-01-10T00:00:00Z"),
		ExpectedHarvestDate: datePtr(t, "2024-06-01T00:00:00Z"),
	}
	update.ID = 7

	events := CalendarEvents([]models.CropUpdate{update})

	require.Len(t, events, 2)
	assert.Equal(t, "7-planting", events[0].ID)
	assert.Equal(t, "Wheat Planting", events[0].Title)
	assert.Equal(t, EventPlanting, events[0].EventType)
	assert.Equal(t, "amber", events[0].Color)
	assert.Equal(t, "7-harvest", events[1].ID)
	assert.Equal(t, "Wheat Expected Harvest", events[1].Title)
	assert.Equal(t, EventHarvest, events[1].EventType)
}

func TestCalendarEventsSkipsMissingDates(t *testing.T) {
	update := models.CropUpdate{CropType: "Rice", PlantedDate: datePtr(t, "2024-03-02T00:00:00Z")}

	events := CalendarEvents([]models.CropUpdate{update})

	require.Len(t, events, 1)
	assert.Equal(t, EventPlanting, events[0].EventType)
}

func TestEventsOnIgnoresTimeOfDay(t *testing.T) {
	events := []CalendarEvent{
		{ID: "1-planting", Date: mustParse(t, "2024-06-15T09:00:00Z")},
		{ID: "2-planting", Date: mustParse(t, "2024-06-16T09:00:00Z")},
	}

	matched := EventsOn(events, mustParse(t, "2024-06-15T23:00:00Z"))
	require.Len(t, matched, 1)
	assert.Equal(t, "1-planting", matched[0].ID)

	assert.Empty(t, EventsOn(events, mustParse(t, "2024-06-17T00:00:00Z")))
}

func TestCropColorFallback(t *testing.T) {
	assert.Equal(t, "amber", CropColor("Wheat"))
	assert.Equal(t, "green", CropColor("Rice"))
	assert.Equal(t, "gray", CropColor("Dragonfruit"))
	assert.Equal(t, "gray", CropColor(""))
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}
