package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuaMGLz/Muebleria/models"
	"github.com/JuaMGLz/Muebleria/qr"
	"github.com/JuaMGLz/Muebleria/web/middleware"
)

// qrGen writes and removes the QR artifacts owned by products and sales.
var qrGen *qr.Generator

// Init wires the handler package's shared dependencies.
func Init(qrDir string) {
	qrGen = qr.New(qrDir)
}

// redirectSuccess redirects back to a list route with a URL-encoded
// success message in the query string.
func redirectSuccess(c *fiber.Ctx, route, message string) error {
	return c.Redirect(route+"?success="+url.QueryEscape(message), fiber.StatusFound)
}

// redirectError is the failure counterpart of redirectSuccess.
func redirectError(c *fiber.Ctx, route, message string) error {
	return c.Redirect(route+"?error="+url.QueryEscape(message), fiber.StatusFound)
}

// paramID parses the :id route parameter as an ObjectID.
func paramID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

// currentUser returns the session user injected by the gate, zero-valued
// when the route sits outside the gate.
func currentUser(c *fiber.Ctx) models.SessionUser {
	user, _ := middleware.CurrentUser(c)
	return user
}

// flash extracts the success/error messages carried in the query string
// after a redirect.
func flash(c *fiber.Ctx) (success, errMsg string) {
	return c.Query("success"), c.Query("error")
}

// formFloat parses a form field as float64, zero when absent or invalid.
func formFloat(c *fiber.Ctx, name string) float64 {
	v, _ := strconv.ParseFloat(c.FormValue(name), 64)
	return v
}

// formInt parses a form field as int, zero when absent or invalid.
func formInt(c *fiber.Ctx, name string) int {
	v, _ := strconv.Atoi(c.FormValue(name))
	return v
}

// formBool reports whether a checkbox-style form field was submitted as
// checked.
func formBool(c *fiber.Ctx, name string) bool {
	switch c.FormValue(name) {
	case "on", "true", "1":
		return true
	}
	return false
}

// formAddress reads the nested direccion[...] fields.
func formAddress(c *fiber.Ctx) models.Address {
	return models.Address{
		Calle:     c.FormValue("direccion[calle]"),
		Numero:    c.FormValue("direccion[numero]"),
		Colonia:   c.FormValue("direccion[colonia]"),
		Municipio: c.FormValue("direccion[municipio]"),
		Estado:    c.FormValue("direccion[estado]"),
		CP:        c.FormValue("direccion[cp]"),
	}
}
