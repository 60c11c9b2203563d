package middleware_test

import (
	"net/http/httptest"
	"testing"

	"cropconnect/config"
	"cropconnect/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	return app
}

func TestGenerateJWTClaims(t *testing.T) {
	config.LoadConfig()

	tokenString, err := middleware.GenerateJWT(42, "John Smith", "farmer", "john@farm.example")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTKey), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "John Smith", claims["name"])
	assert.Equal(t, "farmer", claims["role"])
	assert.Equal(t, "john@farm.example", claims["email"])
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	config.LoadConfig()
	app := protectedApp()

	token, err := middleware.GenerateJWT(7, "Jane Doe", "admin", "jane@farm.example")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsBadTokens(t *testing.T) {
	config.LoadConfig()
	app := protectedApp()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Token abcdef"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestJWTMiddlewareRejectsWrongKey(t *testing.T) {
	config.LoadConfig()
	app := protectedApp()

	claims := jwt.MapClaims{"userId": 1, "role": "farmer"}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
