package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JuaMGLz/Muebleria/database"
	"github.com/JuaMGLz/Muebleria/models"
	"github.com/JuaMGLz/Muebleria/qr"
)

const saleRoute = "/venta/agregar"

func parseSaleForm(c *fiber.Ctx) (models.SaleForm, error) {
	fecha, err := time.Parse("2006-01-02", c.FormValue("fecha"))
	if err != nil {
		return models.SaleForm{}, err
	}
	return models.SaleForm{
		NombreCliente: c.FormValue("nombreCliente"),
		Fecha:         fecha,
		Estado:        c.FormValue("estado"),
		MetodoPago:    c.FormValue("metodo_pago"),
		Subtotal:      formFloat(c, "subtotal"),
		Descuento:     formFloat(c, "descuento"),
		Impuestos:     formFloat(c, "impuestos"),
		Total:         formFloat(c, "total"),
		Notas:         c.FormValue("notas"),
	}, nil
}

// resolveSaleClients replaces each sale's stored client id with its
// display name through one batched lookup, and blanks QR paths that fall
// outside the served prefix.
func resolveSaleClients(c *fiber.Ctx, ventas []models.Sale) []models.Sale {
	ids := make([]string, 0, len(ventas))
	for _, v := range ventas {
		ids = append(ids, v.NombreCliente)
	}

	names, err := database.ClientNames(c.Context(), ids)
	if err != nil {
		logrus.WithError(err).Error("Error al resolver nombres de clientes")
		names = nil
	}

	for i := range ventas {
		if name, ok := names[ventas[i].NombreCliente]; ok {
			ventas[i].NombreCliente = name
		} else {
			ventas[i].NombreCliente = database.ClientNotFoundLabel
		}
		if !strings.HasPrefix(ventas[i].QR, qr.URLPrefix) {
			ventas[i].QR = ""
		}
	}
	return ventas
}

// SaleList displays all sales with resolved client names and the inline
// create form.
func SaleList(c *fiber.Ctx) error {
	var ventas []models.Sale
	cursor, err := database.Sales().Find(c.Context(), bson.M{})
	if err == nil {
		err = cursor.All(c.Context(), &ventas)
	}
	if err != nil {
		logrus.WithError(err).Error("Error al obtener ventas")
		ventas = nil
	}

	success, errMsg := flash(c)
	return c.Render("venta", fiber.Map{
		"isHomePage": false,
		"clientes":   activeClients(c),
		"ventas":     resolveSaleClients(c, ventas),
		"success":    success,
		"error":      errMsg,
		"user":       currentUser(c),
	})
}

// SaleCreate inserts a new sale together with its receipt QR image. If
// the insert fails after the image was written, the orphan is removed.
func SaleCreate(c *fiber.Ctx) error {
	form, err := parseSaleForm(c)
	if err != nil {
		return redirectError(c, saleRoute, "Hubo un error al registrar la venta.")
	}
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, saleRoute, "Hubo un error al registrar la venta.")
	}

	doc := form.Document()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt

	clientName := database.ClientName(c.Context(), doc.NombreCliente)
	relPath, err := qrGen.Generate(qr.SalePayload(doc, clientName), "venta_"+clientName)
	if err != nil {
		logrus.WithError(err).Error("Error al generar el QR de la venta")
		return redirectError(c, saleRoute, "Hubo un error al registrar la venta.")
	}
	doc.QR = relPath

	if _, err := database.Sales().InsertOne(c.Context(), doc); err != nil {
		logrus.WithError(err).Error("Error al registrar la venta")
		qrGen.Remove(relPath)
		return redirectError(c, saleRoute, "Hubo un error al registrar la venta.")
	}

	return redirectSuccess(c, saleRoute, "¡Venta registrada con éxito! QR guardado.")
}

// SaleEditForm shows the edit form for one sale.
func SaleEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(saleRoute, fiber.StatusFound)
	}

	var venta models.Sale
	if err := database.Sales().FindOne(c.Context(), bson.M{"_id": id}).Decode(&venta); err != nil {
		logrus.WithError(err).Error("Error al obtener la venta")
		return c.Redirect(saleRoute, fiber.StatusFound)
	}

	return c.Render("editarVenta", fiber.Map{
		"venta":    venta,
		"clientes": activeClients(c),
		"user":     currentUser(c),
	})
}

// SaleUpdate overwrites a sale's fields and regenerates its QR image with
// the same compensation scheme as products.
func SaleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, saleRoute, "Hubo un error al actualizar la venta.")
	}

	var previa models.Sale
	if err := database.Sales().FindOne(c.Context(), bson.M{"_id": id}).Decode(&previa); err != nil {
		logrus.WithError(err).Error("Error al obtener la venta")
		return redirectError(c, saleRoute, "Hubo un error al actualizar la venta.")
	}

	form, err := parseSaleForm(c)
	if err != nil {
		return redirectError(c, saleRoute, "Hubo un error al actualizar la venta.")
	}
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, saleRoute, "Hubo un error al actualizar la venta.")
	}

	doc := form.Document()
	clientName := database.ClientName(c.Context(), doc.NombreCliente)
	relPath, err := qrGen.Generate(qr.SalePayload(doc, clientName), "venta_"+clientName)
	if err != nil {
		logrus.WithError(err).Error("Error al generar el QR de la venta")
		return redirectError(c, saleRoute, "Hubo un error al actualizar la venta.")
	}

	update := bson.M{"$set": bson.M{
		"nombreCliente": doc.NombreCliente,
		"fecha":         doc.Fecha,
		"estado":        doc.Estado,
		"metodo_pago":   doc.MetodoPago,
		"subtotal":      doc.Subtotal,
		"descuento":     doc.Descuento,
		"impuestos":     doc.Impuestos,
		"total":         doc.Total,
		"notas":         doc.Notas,
		"qr":            relPath,
		"updatedAt":     time.Now(),
	}}
	if _, err := database.Sales().UpdateOne(c.Context(), bson.M{"_id": id}, update); err != nil {
		logrus.WithError(err).Error("Error al actualizar la venta")
		qrGen.Remove(relPath)
		return redirectError(c, saleRoute, "Hubo un error al actualizar la venta.")
	}

	qrGen.Remove(previa.QR)
	return redirectSuccess(c, saleRoute, "¡Venta actualizada con éxito!")
}

// SaleDelete removes a sale and its QR image.
func SaleDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, saleRoute, "Hubo un error al eliminar la venta.")
	}

	var venta models.Sale
	if err := database.Sales().FindOne(c.Context(), bson.M{"_id": id}).Decode(&venta); err != nil {
		logrus.WithError(err).Error("Error al obtener la venta")
		return redirectError(c, saleRoute, "Hubo un error al eliminar la venta.")
	}

	if _, err := database.Sales().DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		logrus.WithError(err).Error("Error al eliminar la venta")
		return redirectError(c, saleRoute, "Hubo un error al eliminar la venta.")
	}

	qrGen.Remove(venta.QR)
	return redirectSuccess(c, saleRoute, "¡Venta eliminada con éxito!")
}

// recentSales fetches all sales newest first with client names resolved,
// for use as the reference list in line-item forms.
func recentSales(c *fiber.Ctx) []models.Sale {
	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: -1}})
	cursor, err := database.Sales().Find(c.Context(), bson.M{}, opts)
	if err != nil {
		logrus.WithError(err).Error("Error al obtener ventas")
		return nil
	}
	var ventas []models.Sale
	if err := cursor.All(c.Context(), &ventas); err != nil {
		logrus.WithError(err).Error("Error al obtener ventas")
		return nil
	}
	return resolveSaleClients(c, ventas)
}
