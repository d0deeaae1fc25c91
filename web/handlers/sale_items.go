package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JuaMGLz/Muebleria/database"
	"github.com/JuaMGLz/Muebleria/models"
)

const saleItemRoute = "/detalle/agregar"

func parseSaleItemForm(c *fiber.Ctx) models.SaleItemForm {
	return models.SaleItemForm{
		VentaID:        c.FormValue("venta_id"),
		NombreCliente:  c.FormValue("nombreCliente"),
		NombreProducto: c.FormValue("nombreProducto"),
		Cantidad:       formInt(c, "cantidad"),
		PrecioUnitario: formFloat(c, "precio_unitario"),
		Descuento:      formFloat(c, "descuento"),
	}
}

// SaleItemList displays all line items plus the reference lists the
// create form needs.
func SaleItemList(c *fiber.Ctx) error {
	var detalles []models.SaleItem
	cursor, err := database.SaleItems().Find(c.Context(), bson.M{})
	if err == nil {
		err = cursor.All(c.Context(), &detalles)
	}
	if err != nil {
		logrus.WithError(err).Error("Error al obtener detalles")
		detalles = nil
	}

	success, errMsg := flash(c)
	return c.Render("detalle", fiber.Map{
		"isHomePage": false,
		"detalles":   detalles,
		"productos":  activeProducts(c),
		"clientes":   activeClients(c),
		"ventas":     recentSales(c),
		"success":    success,
		"error":      errMsg,
		"user":       currentUser(c),
	})
}

// SaleItemCreate inserts a new line item with its subtotal recomputed
// server-side.
func SaleItemCreate(c *fiber.Ctx) error {
	form := parseSaleItemForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, saleItemRoute, "Hubo un error al registrar el detalle.")
	}

	doc := form.Document()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	if _, err := database.SaleItems().InsertOne(c.Context(), doc); err != nil {
		logrus.WithError(err).Error("Error al registrar el detalle")
		return redirectError(c, saleItemRoute, "Hubo un error al registrar el detalle.")
	}

	return redirectSuccess(c, saleItemRoute, "¡Detalle registrado con éxito!")
}

// SaleItemEditForm shows the edit form for one line item.
func SaleItemEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(saleItemRoute, fiber.StatusFound)
	}

	var detalle models.SaleItem
	if err := database.SaleItems().FindOne(c.Context(), bson.M{"_id": id}).Decode(&detalle); err != nil {
		logrus.WithError(err).Error("Error al obtener el detalle")
		return c.Redirect(saleItemRoute, fiber.StatusFound)
	}

	return c.Render("editarDetalle", fiber.Map{
		"detalle":   detalle,
		"productos": activeProducts(c),
		"clientes":  activeClients(c),
		"ventas":    recentSales(c),
		"user":      currentUser(c),
	})
}

// SaleItemUpdate overwrites a line item, recomputing the subtotal.
func SaleItemUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, saleItemRoute, "Hubo un error al actualizar el detalle.")
	}

	form := parseSaleItemForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, saleItemRoute, "Hubo un error al actualizar el detalle.")
	}

	update := bson.M{"$set": bson.M{
		"venta_id":        form.VentaID,
		"nombreCliente":   form.NombreCliente,
		"nombreProducto":  form.NombreProducto,
		"cantidad":        form.Cantidad,
		"precio_unitario": form.PrecioUnitario,
		"descuento":       form.Descuento,
		"subtotal":        form.Subtotal(),
		"updatedAt":       time.Now(),
	}}
	if _, err := database.SaleItems().UpdateOne(c.Context(), bson.M{"_id": id}, update); err != nil {
		logrus.WithError(err).Error("Error al actualizar el detalle")
		return redirectError(c, saleItemRoute, "Hubo un error al actualizar el detalle.")
	}

	return redirectSuccess(c, saleItemRoute, "¡Detalle actualizado con éxito!")
}

// SaleItemDelete removes a line item by id.
func SaleItemDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, saleItemRoute, "Hubo un error al eliminar el detalle.")
	}

	if _, err := database.SaleItems().DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		logrus.WithError(err).Error("Error al eliminar el detalle")
		return redirectError(c, saleItemRoute, "Hubo un error al eliminar el detalle.")
	}

	return redirectSuccess(c, saleItemRoute, "¡Detalle eliminado con éxito!")
}
