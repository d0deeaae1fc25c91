package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuaMGLz/Muebleria/models"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	InitStore(nil, time.Hour)

	engine := html.New("../templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Post("/test-login", func(c *fiber.Ctx) error {
		user := models.SessionUser{
			ID:       "665f1c2ab3d4e5f6a7b8c9d0",
			Username: c.FormValue("usuario"),
			IsAdmin:  c.FormValue("admin") == "1",
		}
		if err := Login(c, user); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/protegida", RequireAuth, func(c *fiber.Ctx) error {
		user, _ := CurrentUser(c)
		return c.SendString(user.Username)
	})
	app.Get("/solo-admin", RequireAuth, RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendString("admin ok")
	})
	app.Get("/sin-cache", NoCache, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}

func loginAs(t *testing.T, app *fiber.App, usuario string, admin bool) *http.Cookie {
	t.Helper()
	form := "usuario=" + usuario
	if admin {
		form += "&admin=1"
	}
	req := httptest.NewRequest(http.MethodPost, "/test-login", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "muebleria_session" {
			return cookie
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireAuthInjectsSessionUser(t *testing.T) {
	app := newTestApp(t)
	cookie := loginAs(t, app, "vendedor", false)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "vendedor", string(body))
}

func TestRequireAdminForbidsNonAdmin(t *testing.T) {
	app := newTestApp(t)
	cookie := loginAs(t, app, "vendedor", false)

	req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	app := newTestApp(t)
	cookie := loginAs(t, app, "gerente", true)

	req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app := newTestApp(t)
	app.Get("/salir", func(c *fiber.Ctx) error {
		if err := Logout(c); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})
	cookie := loginAs(t, app, "vendedor", false)

	req := httptest.NewRequest(http.MethodGet, "/salir", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestNoCacheHeaders(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/sin-cache", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "no-store, no-cache, must-revalidate, private", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))
}
