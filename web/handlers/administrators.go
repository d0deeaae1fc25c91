package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/JuaMGLz/Muebleria/database"
	"github.com/JuaMGLz/Muebleria/models"
)

const administratorRoute = "/administrador/agregar"

func parseAdministratorForm(c *fiber.Ctx) models.AdministratorForm {
	return models.AdministratorForm{
		NombreUsuario: c.FormValue("nombreUsuario"),
		Correo:        c.FormValue("correo"),
		Contrasena:    c.FormValue("contrasena"),
		Administrador: formBool(c, "administrador"),
	}
}

// AdministratorList displays all administrator accounts.
func AdministratorList(c *fiber.Ctx) error {
	var administradores []models.Administrator
	cursor, err := database.Administrators().Find(c.Context(), bson.M{})
	if err == nil {
		err = cursor.All(c.Context(), &administradores)
	}
	if err != nil {
		logrus.WithError(err).Error("Error al obtener administradores")
		administradores = nil
	}

	success, errMsg := flash(c)
	return c.Render("administrador", fiber.Map{
		"isHomePage":      false,
		"administradores": administradores,
		"success":         success,
		"error":           errMsg,
		"user":            currentUser(c),
	})
}

// AdministratorCreate inserts a new administrator, hashing the submitted
// password. The plaintext is never stored.
func AdministratorCreate(c *fiber.Ctx) error {
	form := parseAdministratorForm(c)
	if form.Contrasena == "" {
		return redirectError(c, administratorRoute, "Hubo un error al registrar el administrador.")
	}
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, administratorRoute, "Hubo un error al registrar el administrador.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Error al cifrar la contraseña")
		return redirectError(c, administratorRoute, "Hubo un error al registrar el administrador.")
	}

	now := time.Now()
	doc := models.Administrator{
		NombreUsuario: form.NombreUsuario,
		Correo:        form.Correo,
		Contrasena:    string(hash),
		Administrador: form.Administrador,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := database.Administrators().InsertOne(c.Context(), doc); err != nil {
		logrus.WithError(err).Error("Error al registrar el administrador")
		return redirectError(c, administratorRoute, "Hubo un error al registrar el administrador.")
	}

	return redirectSuccess(c, administratorRoute, "¡Administrador registrado con éxito!")
}

// AdministratorEditForm shows the edit form for one administrator.
func AdministratorEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(administratorRoute, fiber.StatusFound)
	}

	var administrador models.Administrator
	if err := database.Administrators().FindOne(c.Context(), bson.M{"_id": id}).Decode(&administrador); err != nil {
		logrus.WithError(err).Error("Error al obtener el administrador")
		return c.Redirect(administratorRoute, fiber.StatusFound)
	}

	return c.Render("editarAdministrador", fiber.Map{
		"administrador": administrador,
		"user":          currentUser(c),
	})
}

// AdministratorUpdate overwrites an administrator's fields. An empty
// password field keeps the stored hash.
func AdministratorUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, administratorRoute, "Hubo un error al actualizar el administrador.")
	}

	form := parseAdministratorForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, administratorRoute, "Hubo un error al actualizar el administrador.")
	}

	set := bson.M{
		"nombreUsuario": form.NombreUsuario,
		"correo":        form.Correo,
		"administrador": form.Administrador,
		"updatedAt":     time.Now(),
	}
	if form.Contrasena != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(form.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Error("Error al cifrar la contraseña")
			return redirectError(c, administratorRoute, "Hubo un error al actualizar el administrador.")
		}
		set["contrasena"] = string(hash)
	}

	if _, err := database.Administrators().UpdateOne(c.Context(), bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		logrus.WithError(err).Error("Error al actualizar el administrador")
		return redirectError(c, administratorRoute, "Hubo un error al actualizar el administrador.")
	}

	return redirectSuccess(c, administratorRoute, "¡Administrador actualizado con éxito!")
}

// AdministratorDelete removes an administrator by id.
func AdministratorDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, administratorRoute, "Hubo un error al eliminar el administrador.")
	}

	if _, err := database.Administrators().DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		logrus.WithError(err).Error("Error al eliminar el administrador")
		return redirectError(c, administratorRoute, "Hubo un error al eliminar el administrador.")
	}

	return redirectSuccess(c, administratorRoute, "¡Administrador eliminado con éxito!")
}
