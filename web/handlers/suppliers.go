package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/JuaMGLz/Muebleria/database"
	"github.com/JuaMGLz/Muebleria/models"
)

const supplierRoute = "/proveedor/agregar"

func parseSupplierForm(c *fiber.Ctx) models.SupplierForm {
	return models.SupplierForm{
		RazonSocial:    c.FormValue("razonSocial"),
		NombreContacto: c.FormValue("nombreContacto"),
		Telefono:       c.FormValue("telefono"),
		Email:          c.FormValue("email"),
		RFC:            c.FormValue("rfc"),
		Categoria:      c.FormValue("categoria"),
		Direccion:      formAddress(c),
		Banco:          c.FormValue("banco"),
		Clabe:          c.FormValue("clabe"),
		Activo:         formBool(c, "activo"),
	}
}

// SupplierList displays all suppliers with the inline create form.
func SupplierList(c *fiber.Ctx) error {
	var proveedores []models.Supplier
	cursor, err := database.Suppliers().Find(c.Context(), bson.M{})
	if err == nil {
		err = cursor.All(c.Context(), &proveedores)
	}
	if err != nil {
		logrus.WithError(err).Error("Error al obtener proveedores")
		proveedores = nil
	}

	success, errMsg := flash(c)
	return c.Render("proveedor", fiber.Map{
		"isHomePage":  false,
		"proveedores": proveedores,
		"categorias":  models.SupplierCategories,
		"success":     success,
		"error":       errMsg,
		"user":        currentUser(c),
	})
}

// SupplierCreate inserts a new supplier. Duplicate email or RFC hits the
// unique indexes and surfaces as the generic error message.
func SupplierCreate(c *fiber.Ctx) error {
	form := parseSupplierForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, supplierRoute, "Hubo un error al registrar el proveedor.")
	}

	doc := form.Document()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	if _, err := database.Suppliers().InsertOne(c.Context(), doc); err != nil {
		logrus.WithError(err).Error("Error al registrar el proveedor")
		return redirectError(c, supplierRoute, "Hubo un error al registrar el proveedor.")
	}

	return redirectSuccess(c, supplierRoute, "¡Proveedor registrado con éxito!")
}

// SupplierEditForm shows the edit form for one supplier.
func SupplierEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(supplierRoute, fiber.StatusFound)
	}

	var proveedor models.Supplier
	if err := database.Suppliers().FindOne(c.Context(), bson.M{"_id": id}).Decode(&proveedor); err != nil {
		logrus.WithError(err).Error("Error al obtener el proveedor")
		return c.Redirect(supplierRoute, fiber.StatusFound)
	}

	return c.Render("editarProveedor", fiber.Map{
		"proveedor":  proveedor,
		"categorias": models.SupplierCategories,
		"user":       currentUser(c),
	})
}

// SupplierUpdate overwrites a supplier's fields with the submitted body.
func SupplierUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, supplierRoute, "Hubo un error al actualizar el proveedor.")
	}

	form := parseSupplierForm(c)
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, supplierRoute, "Hubo un error al actualizar el proveedor.")
	}

	doc := form.Document()
	update := bson.M{"$set": bson.M{
		"razonSocial":    doc.RazonSocial,
		"nombreContacto": doc.NombreContacto,
		"telefono":       doc.Telefono,
		"email":          doc.Email,
		"rfc":            doc.RFC,
		"categoria":      doc.Categoria,
		"direccion":      doc.Direccion,
		"banco":          doc.Banco,
		"clabe":          doc.Clabe,
		"activo":         doc.Activo,
		"updatedAt":      time.Now(),
	}}
	if _, err := database.Suppliers().UpdateOne(c.Context(), bson.M{"_id": id}, update); err != nil {
		logrus.WithError(err).Error("Error al actualizar el proveedor")
		return redirectError(c, supplierRoute, "Hubo un error al actualizar el proveedor.")
	}

	return redirectSuccess(c, supplierRoute, "¡Proveedor actualizado con éxito!")
}

// SupplierDelete removes a supplier by id.
func SupplierDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, supplierRoute, "Hubo un error al eliminar el proveedor.")
	}

	if _, err := database.Suppliers().DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		logrus.WithError(err).Error("Error al eliminar el proveedor")
		return redirectError(c, supplierRoute, "Hubo un error al eliminar el proveedor.")
	}

	return redirectSuccess(c, supplierRoute, "¡Proveedor eliminado con éxito!")
}
