package cropController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cropconnect/config"
	"cropconnect/database"
	"cropconnect/middleware"
	"cropconnect/models"
	cropRoutes "cropconnect/routers/cropRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	config.AppConfig.SaltRound = bcrypt.MinCost

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	cropRoutes.SetupCropRoutes(app)
	return app
}

func seedUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hash), Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, name, role, email)
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestCropUpdateLifecycle(t *testing.T) {
	app := setupApp(t)
	_, farmerToken := seedUser(t, "John Smith", "john@farm.example", models.RoleFarmer)
	_, employeeToken := seedUser(t, "Sarah Johnson", "sarah@cropconnect.example", models.RoleEmployee)

	// Missing required fields are rejected before any store call.
	resp, env := doJSON(t, app, fiber.MethodPost, "/crops/create", farmerToken, fiber.Map{"type": "Wheat"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Status)

	// A valid submission lands as pending.
	resp, env = doJSON(t, app, fiber.MethodPost, "/crops/create", farmerToken, fiber.Map{
		"type":                "Wheat",
		"stage":               "Mature",
		"quantity":            5,
		"plantedDate":         "2024-01-10",
		"expectedHarvestDate": "2024-06-01",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.CropUpdate
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.StatusPending, created.Status)
	require.NotZero(t, created.ID)

	// Farmers cannot review.
	resp, _ = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/crops/%d/status", created.ID), farmerToken,
		fiber.Map{"status": "approved"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Employee rejects with feedback.
	resp, env = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/crops/%d/status", created.ID), employeeToken,
		fiber.Map{"status": "rejected", "feedback": "Missing proof"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reviewed models.CropUpdate
	require.NoError(t, json.Unmarshal(env.Data, &reviewed))
	assert.Equal(t, models.StatusRejected, reviewed.Status)
	assert.Equal(t, "Missing proof", reviewed.Feedback)

	// Rejected is terminal: a second review fails and changes nothing.
	resp, _ = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/crops/%d/status", created.ID), employeeToken,
		fiber.Map{"status": "approved"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var stored models.CropUpdate
	require.NoError(t, database.Database.Db.First(&stored, created.ID).Error)
	assert.Equal(t, models.StatusRejected, stored.Status)
	assert.Equal(t, "Missing proof", stored.Feedback)

	// The farmer deletes the rejected submission to resubmit.
	resp, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/crops/%d", created.ID), farmerToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestReviewUnknownUpdateReturnsNotFound(t *testing.T) {
	app := setupApp(t)
	_, employeeToken := seedUser(t, "Sarah", "sarah@cropconnect.example", models.RoleEmployee)

	resp, _ := doJSON(t, app, fiber.MethodPatch, "/crops/9999/status", employeeToken,
		fiber.Map{"status": "approved"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApprovedUpdatesCannotBeDeleted(t *testing.T) {
	app := setupApp(t)
	farmer, farmerToken := seedUser(t, "John", "john@farm.example", models.RoleFarmer)

	update := models.CropUpdate{FarmerID: farmer.ID, CropType: "Rice", Stage: "Mature", Quantity: 2, Status: models.StatusApproved}
	require.NoError(t, database.Database.Db.Create(&update).Error)

	resp, _ := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/crops/%d", update.ID), farmerToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestListIsScopedByRole(t *testing.T) {
	app := setupApp(t)
	farmer, farmerToken := seedUser(t, "John", "john@farm.example", models.RoleFarmer)
	other, _ := seedUser(t, "Jane", "jane@farm.example", models.RoleFarmer)
	_, employeeToken := seedUser(t, "Sarah", "sarah@cropconnect.example", models.RoleEmployee)

	for _, farmerID := range []uint{farmer.ID, other.ID} {
		update := models.CropUpdate{FarmerID: farmerID, CropType: "Corn", Stage: "Seedling", Quantity: 1, Status: models.StatusPending}
		require.NoError(t, database.Database.Db.Create(&update).Error)
	}

	_, env := doJSON(t, app, fiber.MethodGet, "/crops/list", farmerToken, nil)
	var mine []models.CropUpdate
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, farmer.ID, mine[0].FarmerID)

	_, env = doJSON(t, app, fiber.MethodGet, "/crops/list", employeeToken, nil)
	var all []models.CropUpdate
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 2)
}

func TestDashboardEndpoints(t *testing.T) {
	app := setupApp(t)
	farmer, farmerToken := seedUser(t, "John", "john@farm.example", models.RoleFarmer)

	planted := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	harvest := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)
	for _, status := range []string{models.StatusPending, models.StatusApproved, models.StatusRejected} {
		update := models.CropUpdate{
			FarmerID: farmer.ID, CropType: "Wheat", Stage: "Mature", Quantity: 5,
			PlantedDate: &planted, ExpectedHarvestDate: &harvest, Status: status,
		}
		update.CreatedAt = time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
		require.NoError(t, database.Database.Db.Create(&update).Error)
	}

	resp, env := doJSON(t, app, fiber.MethodGet, "/dashboard/metrics", farmerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var metrics struct {
		Counts struct {
			Total, Pending, Approved, Rejected int
		} `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &metrics))
	assert.Equal(t, 3, metrics.Counts.Total)
	assert.Equal(t, metrics.Counts.Total,
		metrics.Counts.Pending+metrics.Counts.Approved+metrics.Counts.Rejected)

	resp, env = doJSON(t, app, fiber.MethodGet, "/dashboard/chart?range=seasonal", farmerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var chart struct {
		Range  string `json:"range"`
		Series []struct {
			Name    string `json:"name"`
			Pending int    `json:"pending"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &chart))
	assert.Equal(t, "seasonal", chart.Range)
	require.Len(t, chart.Series, 4)
	assert.Equal(t, "Winter", chart.Series[3].Name)
	assert.Equal(t, 1, chart.Series[3].Pending)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/dashboard/chart?range=weekly", farmerToken, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Calendar day match ignores the stored time-of-day.
	resp, env = doJSON(t, app, fiber.MethodGet, "/dashboard/calendar?date=2024-06-15", farmerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var events []struct {
		EventType string `json:"event_type"`
		Color     string `json:"color"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &events))
	require.Len(t, events, 3) // one planting event per record
	assert.Equal(t, "planting", events[0].EventType)
	assert.Equal(t, "amber", events[0].Color)

	resp, env = doJSON(t, app, fiber.MethodGet, "/dashboard/calendar?date=2024-06-16", farmerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &events))
	assert.Empty(t, events)
}
