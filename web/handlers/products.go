package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JuaMGLz/Muebleria/database"
	"github.com/JuaMGLz/Muebleria/models"
	"github.com/JuaMGLz/Muebleria/qr"
)

const productRoute = "/producto/agregar"

func parseProductForm(c *fiber.Ctx) models.ProductForm {
	return models.ProductForm{
		NombreCategoria: c.FormValue("nombreCategoria"),
		Nombre:          c.FormValue("nombre"),
		Descripcion:     c.FormValue("descripcion"),
		Marca:           c.FormValue("marca"),
		GarantiaMeses:   formInt(c, "garantia_meses"),
		Color:           c.FormValue("color"),
		Material:        c.FormValue("material"),
		Medidas: models.Dimensions{
			Largo: formFloat(c, "medidas[largo]"),
			Ancho: formFloat(c, "medidas[ancho]"),
			Alto:  formFloat(c, "medidas[alto]"),
		},
		Peso:   formFloat(c, "peso"),
		Precio: formFloat(c, "precio"),
		Activa: formBool(c, "activa"),
	}
}

// ProductList displays all products with the inline create form.
func ProductList(c *fiber.Ctx) error {
	var productos []models.Product
	cursor, err := database.Products().Find(c.Context(), bson.M{})
	if err == nil {
		err = cursor.All(c.Context(), &productos)
	}
	if err != nil {
		logrus.WithError(err).Error("Error al obtener productos")
		productos = nil
	}

	success, errMsg := flash(c)
	return c.Render("producto", fiber.Map{
		"isHomePage": false,
		"categorias": activeCategories(c),
		"productos":  productos,
		"success":    success,
		"error":      errMsg,
		"user":       currentUser(c),
	})
}

// ProductCreate inserts a new product together with its QR image. If the
// insert fails after the image was written, the orphan image is removed.
func ProductCreate(c *fiber.Ctx) error {
	form := parseProductForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, productRoute, "Hubo un error al registrar el producto.")
	}

	doc := form.Document()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt

	relPath, err := qrGen.Generate(qr.ProductPayload(doc), doc.Nombre)
	if err != nil {
		logrus.WithError(err).Error("Error al generar el QR del producto")
		return redirectError(c, productRoute, "Hubo un error al registrar el producto.")
	}
	doc.QR = relPath

	if _, err := database.Products().InsertOne(c.Context(), doc); err != nil {
		logrus.WithError(err).Error("Error al registrar el producto")
		qrGen.Remove(relPath)
		return redirectError(c, productRoute, "Hubo un error al registrar el producto.")
	}

	return redirectSuccess(c, productRoute, "¡Producto registrado con éxito! QR guardado.")
}

// ProductEditForm shows the edit form for one product.
func ProductEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(productRoute, fiber.StatusFound)
	}

	var producto models.Product
	if err := database.Products().FindOne(c.Context(), bson.M{"_id": id}).Decode(&producto); err != nil {
		logrus.WithError(err).Error("Error al obtener el producto")
		return c.Redirect(productRoute, fiber.StatusFound)
	}

	return c.Render("editarProducto", fiber.Map{
		"producto":   producto,
		"categorias": activeCategories(c),
		"user":       currentUser(c),
	})
}

// ProductUpdate overwrites a product's fields and regenerates its QR
// image. The new image is written first; the update failing removes it,
// the update succeeding removes the previous one.
func ProductUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, productRoute, "Hubo un error al actualizar el producto.")
	}

	var previo models.Product
	if err := database.Products().FindOne(c.Context(), bson.M{"_id": id}).Decode(&previo); err != nil {
		logrus.WithError(err).Error("Error al obtener el producto")
		return redirectError(c, productRoute, "Hubo un error al actualizar el producto.")
	}

	form := parseProductForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, productRoute, "Hubo un error al actualizar el producto.")
	}

	doc := form.Document()
	relPath, err := qrGen.Generate(qr.ProductPayload(doc), doc.Nombre)
	if err != nil {
		logrus.WithError(err).Error("Error al generar el QR del producto")
		return redirectError(c, productRoute, "Hubo un error al actualizar el producto.")
	}

	update := bson.M{"$set": bson.M{
		"nombreCategoria": doc.NombreCategoria,
		"nombre":          doc.Nombre,
		"descripcion":     doc.Descripcion,
		"marca":           doc.Marca,
		"garantia_meses":  doc.GarantiaMeses,
		"color":           doc.Color,
		"material":        doc.Material,
		"medidas":         doc.Medidas,
		"peso":            doc.Peso,
		"precio":          doc.Precio,
		"activa":          doc.Activa,
		"qr":              relPath,
		"updatedAt":       time.Now(),
	}}
	if _, err := database.Products().UpdateOne(c.Context(), bson.M{"_id": id}, update); err != nil {
		logrus.WithError(err).Error("Error al actualizar el producto")
		qrGen.Remove(relPath)
		return redirectError(c, productRoute, "Hubo un error al actualizar el producto.")
	}

	qrGen.Remove(previo.QR)
	return redirectSuccess(c, productRoute, "¡Producto actualizado con éxito!")
}

// ProductDelete removes a product and its QR image.
func ProductDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, productRoute, "Hubo un error al eliminar el producto.")
	}

	var producto models.Product
	if err := database.Products().FindOne(c.Context(), bson.M{"_id": id}).Decode(&producto); err != nil {
		logrus.WithError(err).Error("Error al obtener el producto")
		return redirectError(c, productRoute, "Hubo un error al eliminar el producto.")
	}

	if _, err := database.Products().DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		logrus.WithError(err).Error("Error al eliminar el producto")
		return redirectError(c, productRoute, "Hubo un error al eliminar el producto.")
	}

	qrGen.Remove(producto.QR)
	return redirectSuccess(c, productRoute, "¡Producto eliminado con éxito!")
}

// activeProducts fetches the active products sorted by name, for use as
// the reference list in inventory and line-item forms.
func activeProducts(c *fiber.Ctx) []models.Product {
	opts := options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}})
	cursor, err := database.Products().Find(c.Context(), bson.M{"activa": true}, opts)
	if err != nil {
		logrus.WithError(err).Error("Error al obtener productos activos")
		return nil
	}
	var productos []models.Product
	if err := cursor.All(c.Context(), &productos); err != nil {
		logrus.WithError(err).Error("Error al obtener productos activos")
		return nil
	}
	return productos
}
