package supportController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cropconnect/config"
	"cropconnect/database"
	"cropconnect/middleware"
	"cropconnect/models"
	supportRoutes "cropconnect/routers/supportRoutes"

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
	supportRoutes.SetupSupportRoutes(app)
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

func TestTicketLifecycle(t *testing.T) {
	app := setupApp(t)
	farmer, farmerToken := seedUser(t, "John", "john@farm.example", models.RoleFarmer)
	_, adminToken := seedUser(t, "Admin", "admin@cropconnect.example", models.RoleAdmin)

	resp, env := doJSON(t, app, fiber.MethodPost, "/support/create", farmerToken, fiber.Map{
		"title":       "Cannot submit crop update",
		"description": "The form fails every time I press submit.",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var ticket models.SupportTicket
	require.NoError(t, json.Unmarshal(env.Data, &ticket))
	assert.Equal(t, models.TicketOpen, ticket.Status)
	assert.Equal(t, farmer.ID, ticket.UserID)
	assert.Equal(t, "John", ticket.UserName)
	assert.Equal(t, models.RoleFarmer, ticket.UserRole)

	// Forward move: open -> in-progress.
	resp, _ = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/support/%d/status", ticket.ID), adminToken,
		fiber.Map{"status": "in-progress"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Responding forces resolved.
	resp, _ = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/support/%d/respond", ticket.ID), adminToken,
		fiber.Map{"adminResponse": "Fixed the validation on our side, please retry."})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.SupportTicket
	require.NoError(t, database.Database.Db.First(&stored, ticket.ID).Error)
	assert.Equal(t, models.TicketResolved, stored.Status)
	assert.NotEmpty(t, stored.AdminResponse)

	// Backward move is rejected.
	resp, _ = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/support/%d/status", ticket.ID), adminToken,
		fiber.Map{"status": "in-progress"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestTicketValidation(t *testing.T) {
	app := setupApp(t)
	_, farmerToken := seedUser(t, "John", "john@farm.example", models.RoleFarmer)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/support/create", farmerToken, fiber.Map{"title": ""})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminListFiltersByStatus(t *testing.T) {
	app := setupApp(t)
	farmer, _ := seedUser(t, "John", "john@farm.example", models.RoleFarmer)
	_, adminToken := seedUser(t, "Admin", "admin@cropconnect.example", models.RoleAdmin)

	for _, status := range []string{models.TicketOpen, models.TicketResolved} {
		ticket := models.SupportTicket{
			UserID: farmer.ID, UserName: "John", UserRole: models.RoleFarmer,
			Title: "Ticket " + status, Description: "d", Status: status,
		}
		require.NoError(t, database.Database.Db.Create(&ticket).Error)
	}

	resp, env := doJSON(t, app, fiber.MethodGet, "/support/admin-list?status=open", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tickets []models.SupportTicket
	require.NoError(t, json.Unmarshal(env.Data, &tickets))
	require.Len(t, tickets, 1)
	assert.Equal(t, models.TicketOpen, tickets[0].Status)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/support/admin-list?status=stuck", adminToken, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMyTicketsScopedToOwner(t *testing.T) {
	app := setupApp(t)
	farmer, farmerToken := seedUser(t, "John", "john@farm.example", models.RoleFarmer)
	other, _ := seedUser(t, "Jane", "jane@farm.example", models.RoleFarmer)

	for _, owner := range []uint{farmer.ID, other.ID} {
		ticket := models.SupportTicket{UserID: owner, Title: "t", Description: "d", Status: models.TicketOpen}
		require.NoError(t, database.Database.Db.Create(&ticket).Error)
	}

	_, env := doJSON(t, app, fiber.MethodGet, "/support/list", farmerToken, nil)
	var tickets []models.SupportTicket
	require.NoError(t, json.Unmarshal(env.Data, &tickets))
	require.Len(t, tickets, 1)
	assert.Equal(t, farmer.ID, tickets[0].UserID)
}
