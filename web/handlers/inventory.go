package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JuaMGLz/Muebleria/database"
	"github.com/JuaMGLz/Muebleria/models"
)

const inventoryRoute = "/inventario/agregar"

func parseInventoryForm(c *fiber.Ctx) models.InventoryForm {
	return models.InventoryForm{
		NombreProducto: c.FormValue("nombreProducto"),
		Stock:          formInt(c, "stock"),
		Ubicacion:      c.FormValue("ubicacion"),
		Sucursal:       c.FormValue("sucursal"),
	}
}

// InventoryList displays all inventory records with the inline create form.
func InventoryList(c *fiber.Ctx) error {
	var inventarios []models.Inventory
	cursor, err := database.Inventories().Find(c.Context(), bson.M{})
	if err == nil {
		err = cursor.All(c.Context(), &inventarios)
	}
	if err != nil {
		logrus.WithError(err).Error("Error al obtener inventarios")
		inventarios = nil
	}

	success, errMsg := flash(c)
	return c.Render("inventario", fiber.Map{
		"isHomePage":  false,
		"productos":   activeProducts(c),
		"inventarios": inventarios,
		"success":     success,
		"error":       errMsg,
		"user":        currentUser(c),
	})
}

// InventoryCreate inserts a new inventory record.
func InventoryCreate(c *fiber.Ctx) error {
	form := parseInventoryForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, inventoryRoute, "Hubo un error al registrar el inventario.")
	}

	doc := form.Document()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	if _, err := database.Inventories().InsertOne(c.Context(), doc); err != nil {
		logrus.WithError(err).Error("Error al registrar el inventario")
		return redirectError(c, inventoryRoute, "Hubo un error al registrar el inventario.")
	}

	return redirectSuccess(c, inventoryRoute, "¡Inventario registrado con éxito!")
}

// InventoryEditForm shows the edit form for one inventory record.
func InventoryEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(inventoryRoute, fiber.StatusFound)
	}

	var inventario models.Inventory
	if err := database.Inventories().FindOne(c.Context(), bson.M{"_id": id}).Decode(&inventario); err != nil {
		logrus.WithError(err).Error("Error al obtener el inventario")
		return c.Redirect(inventoryRoute, fiber.StatusFound)
	}

	return c.Render("editarInventario", fiber.Map{
		"inventario": inventario,
		"productos":  activeProducts(c),
		"user":       currentUser(c),
	})
}

// InventoryUpdate overwrites an inventory record's fields.
func InventoryUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, inventoryRoute, "Hubo un error al actualizar el inventario.")
	}

	form := parseInventoryForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, inventoryRoute, "Hubo un error al actualizar el inventario.")
	}

	update := bson.M{"$set": bson.M{
		"nombreProducto": form.NombreProducto,
		"stock":          form.Stock,
		"ubicacion":      form.Ubicacion,
		"sucursal":       form.Sucursal,
		"updatedAt":      time.Now(),
	}}
	if _, err := database.Inventories().UpdateOne(c.Context(), bson.M{"_id": id}, update); err != nil {
		logrus.WithError(err).Error("Error al actualizar el inventario")
		return redirectError(c, inventoryRoute, "Hubo un error al actualizar el inventario.")
	}

	return redirectSuccess(c, inventoryRoute, "¡Inventario actualizado con éxito!")
}

// InventoryDelete removes an inventory record by id.
func InventoryDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, inventoryRoute, "Hubo un error al eliminar el inventario.")
	}

	if _, err := database.Inventories().DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		logrus.WithError(err).Error("Error al eliminar el inventario")
		return redirectError(c, inventoryRoute, "Hubo un error al eliminar el inventario.")
	}

	return redirectSuccess(c, inventoryRoute, "¡Inventario eliminado con éxito!")
}
