package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JuaMGLz/Muebleria/database"
	"github.com/JuaMGLz/Muebleria/models"
)

const clientRoute = "/cliente/agregar"

func parseClientForm(c *fiber.Ctx) models.ClientForm {
	return models.ClientForm{
		Nombre:    c.FormValue("nombre"),
		Telefono:  c.FormValue("telefono"),
		Email:     c.FormValue("email"),
		RFC:       c.FormValue("rfc"),
		Direccion: formAddress(c),
		Activo:    formBool(c, "activo"),
	}
}

// ClientList displays all clients with the inline create form.
func ClientList(c *fiber.Ctx) error {
	var clientes []models.Client
	cursor, err := database.Clients().Find(c.Context(), bson.M{})
	if err == nil {
		err = cursor.All(c.Context(), &clientes)
	}
	if err != nil {
		logrus.WithError(err).Error("Error al obtener clientes")
		clientes = nil
	}

	success, errMsg := flash(c)
	return c.Render("cliente", fiber.Map{
		"isHomePage": false,
		"clientes":   clientes,
		"success":    success,
		"error":      errMsg,
		"user":       currentUser(c),
	})
}

// ClientCreate inserts a new client.
func ClientCreate(c *fiber.Ctx) error {
	form := parseClientForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, clientRoute, "Hubo un error al registrar el cliente.")
	}

	doc := form.Document()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	if _, err := database.Clients().InsertOne(c.Context(), doc); err != nil {
		logrus.WithError(err).Error("Error al registrar el cliente")
		return redirectError(c, clientRoute, "Hubo un error al registrar el cliente.")
	}

	return redirectSuccess(c, clientRoute, "¡Cliente registrado con éxito!")
}

// ClientEditForm shows the edit form for one client.
func ClientEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(clientRoute, fiber.StatusFound)
	}

	var cliente models.Client
	if err := database.Clients().FindOne(c.Context(), bson.M{"_id": id}).Decode(&cliente); err != nil {
		logrus.WithError(err).Error("Error al obtener el cliente")
		return c.Redirect(clientRoute, fiber.StatusFound)
	}

	return c.Render("editarCliente", fiber.Map{
		"cliente": cliente,
		"user":    currentUser(c),
	})
}

// ClientUpdate overwrites a client's fields with the submitted body.
func ClientUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, clientRoute, "Hubo un error al actualizar el cliente.")
	}

	form := parseClientForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, clientRoute, "Hubo un error al actualizar el cliente.")
	}

	update := bson.M{"$set": bson.M{
		"nombre":    form.Nombre,
		"telefono":  form.Telefono,
		"email":     form.Email,
		"rfc":       form.RFC,
		"direccion": form.Direccion,
		"activo":    form.Activo,
		"updatedAt": time.Now(),
	}}
	if _, err := database.Clients().UpdateOne(c.Context(), bson.M{"_id": id}, update); err != nil {
		logrus.WithError(err).Error("Error al actualizar el cliente")
		return redirectError(c, clientRoute, "Hubo un error al actualizar el cliente.")
	}

	return redirectSuccess(c, clientRoute, "¡Cliente actualizado con éxito!")
}

// ClientDelete removes a client by id. Sales keep the dangling reference
// and resolve to the not-found placeholder afterwards.
func ClientDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, clientRoute, "Hubo un error al eliminar el cliente.")
	}

	if _, err := database.Clients().DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		logrus.WithError(err).Error("Error al eliminar el cliente")
		return redirectError(c, clientRoute, "Hubo un error al eliminar el cliente.")
	}

	return redirectSuccess(c, clientRoute, "¡Cliente eliminado con éxito!")
}

// activeClients fetches the active clients sorted by name, for use as the
// reference list in sale forms.
func activeClients(c *fiber.Ctx) []models.Client {
	opts := options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}})
	cursor, err := database.Clients().Find(c.Context(), bson.M{"activo": true}, opts)
	if err != nil {
		logrus.WithError(err).Error("Error al obtener clientes activos")
		return nil
	}
	var clientes []models.Client
	if err := cursor.All(c.Context(), &clientes); err != nil {
		logrus.WithError(err).Error("Error al obtener clientes activos")
		return nil
	}
	return clientes
}
