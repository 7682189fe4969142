package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/maboutik/maboutik-web/internal/interfaces/http"
	pkgjwt "github.com/maboutik/maboutik-web/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testBoutiqueID = "00000000-0000-0000-0000-000000000002"
	testIssuer     = "maboutik-test"
	testExpMin     = 60
)

// buildTestApp aplicación Fiber mínima con una ruta marchand (solo JWT) y una
// ruta admin (JWT + RequireAdmin). Los handlers devuelven la sesión extraída.
func buildTestApp() *fiber.App {
	app := fiber.New()
	sessionEcho := func(c *fiber.Ctx) error {
		sess := apphttp.GetSession(c)
		return c.JSON(fiber.Map{
			"user_id":  sess.UserID,
			"boutique": sess.BoutiqueID,
			"role":     sess.Role,
			"token":    sess.Token,
		})
	}
	app.Get("/boutique", apphttp.AuthMiddleware(testJWTSecret), sessionEcho)
	app.Get("/admin", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireAdmin(), sessionEcho)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBoutiqueID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware: extracción de la sesión
// ──────────────────────────────────────────────────────────────────────────────

// El token válido produce una sesión completa, con el token crudo conservado
// para reenviarlo al backend.
func TestAuthMiddleware_ExtraitLaSession(t *testing.T) {
	app := buildTestApp()
	tok := tokenForRole(t, "marchand")
	resp := doRequest(t, app, "/boutique", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testBoutiqueID, body["boutique"])
	assert.Equal(t, "marchand", body["role"])
	assert.Equal(t, tok, body["token"], "el token crudo viaja en la sesión")
}

func TestAuthMiddleware_SansHeader_Retourne401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/boutique", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatInvalide_Retourne401(t *testing.T) {
	app := buildTestApp()
	for _, header := range []string{"Token abc", "Bearer", "Bearer  "} {
		resp := doRequest(t, app, "/boutique", header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_TokenInvalide_Retourne401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/boutique", "Bearer jeton.invalide.ici")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAdmin: RBAC de la consola
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminPasse(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", "Bearer "+tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_MarchandBloque(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", "Bearer "+tokenForRole(t, "marchand"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt: integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBoutiqueID, "marchand", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, boutiqueID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testBoutiqueID, boutiqueID)
	assert.Equal(t, "marchand", role)
}

func TestJWT_TokenExpire_RetourneErreur(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBoutiqueID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_MauvaisSecret_RetourneErreur(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testBoutiqueID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("autre-secret-completement-different", tok)
	assert.Error(t, err)
}
