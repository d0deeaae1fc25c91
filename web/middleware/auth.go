package middleware

import (
	"encoding/gob"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"

	"github.com/JuaMGLz/Muebleria/models"
)

// userKey is the session entry holding the resolved user.
const userKey = "user"

// LocalsUserKey is the request-context key the gate injects the resolved
// user under. Handlers read it through CurrentUser.
const LocalsUserKey = "user"

var store *session.Store

// InitStore configures the session store. A nil storage falls back to the
// in-memory store, which is what tests use.
func InitStore(storage fiber.Storage, expiration time.Duration) {
	gob.Register(models.SessionUser{})
	cfg := session.Config{
		Expiration:     expiration,
		KeyLookup:      "cookie:muebleria_session",
		CookieHTTPOnly: true,
	}
	if storage != nil {
		cfg.Storage = storage
	}
	store = session.New(cfg)
}

// RequireAuth redirects to the login page when the request carries no
// authenticated session; otherwise it injects the resolved user into the
// request context and lets the request proceed.
func RequireAuth(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		logrus.WithError(err).Warn("Failed to load session")
		return c.Redirect("/login", fiber.StatusFound)
	}

	user, ok := sess.Get(userKey).(models.SessionUser)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}

	c.Locals(LocalsUserKey, user)
	return c.Next()
}

// RequireAdmin renders the forbidden view unless the session user carries
// the administrator flag. Always applied after RequireAuth.
func RequireAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals(LocalsUserKey).(models.SessionUser)
	if !ok || !user.IsAdmin {
		return c.Status(fiber.StatusForbidden).Render("403", fiber.Map{
			"user": user,
		})
	}
	return c.Next()
}

// CurrentUser returns the resolved user the gate attached to the request.
func CurrentUser(c *fiber.Ctx) (models.SessionUser, bool) {
	user, ok := c.Locals(LocalsUserKey).(models.SessionUser)
	return user, ok
}

// SessionUser reads the user straight from the session, for routes that
// sit outside the gate (the login page redirecting live sessions home).
func SessionUser(c *fiber.Ctx) (models.SessionUser, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return models.SessionUser{}, false
	}
	user, ok := sess.Get(userKey).(models.SessionUser)
	return user, ok
}

// Login stores the resolved user in the session.
func Login(c *fiber.Ctx, user models.SessionUser) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(userKey, user)
	return sess.Save()
}

// Logout destroys the session.
func Logout(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// NoCache marks a response as non-cacheable so the browser cannot show a
// logged-in page from history after logout.
func NoCache(c *fiber.Ctx) error {
	c.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")
	return c.Next()
}
