package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/JuaMGLz/Muebleria/database"
	"github.com/JuaMGLz/Muebleria/models"
	"github.com/JuaMGLz/Muebleria/web/middleware"
)

// LoginForm shows the login page, sending live sessions straight home.
func LoginForm(c *fiber.Ctx) error {
	if _, ok := middleware.SessionUser(c); ok {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Render("login", fiber.Map{})
}

// Login verifies the submitted credentials against the stored hash and
// establishes a session. Each failure branch renders the login view with
// its own message and leaks nothing else.
func Login(c *fiber.Ctx) error {
	usuario := c.FormValue("usuario")
	contrasena := c.FormValue("contrasena")

	if usuario == "" || contrasena == "" {
		return c.Render("login", fiber.Map{"error": "Completa usuario y contraseña"})
	}

	var admin models.Administrator
	err := database.Administrators().FindOne(c.Context(), bson.M{
		"$or": bson.A{
			bson.M{"nombreUsuario": usuario},
			bson.M{"correo": usuario},
		},
	}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return c.Render("login", fiber.Map{"error": "Usuario no encontrado"})
	}
	if err != nil {
		logrus.WithError(err).Error("Error al buscar el administrador")
		return c.Render("login", fiber.Map{"error": "Ocurrió un error. Intenta de nuevo."})
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Contrasena), []byte(contrasena)) != nil {
		return c.Render("login", fiber.Map{"error": "Contraseña incorrecta"})
	}

	user := models.SessionUser{
		ID:       admin.ID.Hex(),
		Username: admin.NombreUsuario,
		IsAdmin:  admin.Administrador,
	}
	if err := middleware.Login(c, user); err != nil {
		logrus.WithError(err).Error("Error al iniciar la sesión")
		return c.Render("login", fiber.Map{"error": "Ocurrió un error. Intenta de nuevo."})
	}

	return c.Redirect("/", fiber.StatusFound)
}

// Logout destroys the session and returns to the login page.
func Logout(c *fiber.Ctx) error {
	if err := middleware.Logout(c); err != nil {
		logrus.WithError(err).Warn("Error al cerrar la sesión")
	}
	return c.Redirect("/login", fiber.StatusFound)
}
