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

const categoryRoute = "/categoria/agregar"

// CategoryList displays all categories with the inline create form.
func CategoryList(c *fiber.Ctx) error {
	var categorias []models.Category
	cursor, err := database.Categories().Find(c.Context(), bson.M{})
	if err == nil {
		err = cursor.All(c.Context(), &categorias)
	}
	if err != nil {
		logrus.WithError(err).Error("Error al obtener categorías")
		categorias = nil
	}

	success, errMsg := flash(c)
	return c.Render("categoria", fiber.Map{
		"isHomePage": false,
		"categorias": categorias,
		"success":    success,
		"error":      errMsg,
		"user":       currentUser(c),
	})
}

// CategoryCreate inserts a new category.
func CategoryCreate(c *fiber.Ctx) error {
	form := models.CategoryForm{
		Nombre:      c.FormValue("nombre"),
		Descripcion: c.FormValue("descripcion"),
		Activa:      formBool(c, "activa"),
	}
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, categoryRoute, "Hubo un error al registrar la categoría.")
	}

	doc := form.Document()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	if _, err := database.Categories().InsertOne(c.Context(), doc); err != nil {
		logrus.WithError(err).Error("Error al registrar la categoría")
		return redirectError(c, categoryRoute, "Hubo un error al registrar la categoría.")
	}

	return redirectSuccess(c, categoryRoute, "¡Categoría registrada con éxito!")
}

// CategoryEditForm shows the edit form for one category.
func CategoryEditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect(categoryRoute, fiber.StatusFound)
	}

	var categoria models.Category
	if err := database.Categories().FindOne(c.Context(), bson.M{"_id": id}).Decode(&categoria); err != nil {
		logrus.WithError(err).Error("Error al obtener la categoría")
		return c.Redirect(categoryRoute, fiber.StatusFound)
	}

	return c.Render("editarCategoria", fiber.Map{
		"categoria": categoria,
		"user":      currentUser(c),
	})
}

// CategoryUpdate overwrites a category's fields with the submitted body.
func CategoryUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, categoryRoute, "Hubo un error al actualizar la categoría.")
	}

	form := models.CategoryForm{
		Nombre:      c.FormValue("nombre"),
		Descripcion: c.FormValue("descripcion"),
		Activa:      formBool(c, "activa"),
	}
	if err := models.ValidateForm(&form); err != nil {
		return redirectError(c, categoryRoute, "Hubo un error al actualizar la categoría.")
	}

	update := bson.M{"$set": bson.M{
		"nombre":      form.Nombre,
		"descripcion": form.Descripcion,
		"activa":      form.Activa,
		"updatedAt":   time.Now(),
	}}
	if _, err := database.Categories().UpdateOne(c.Context(), bson.M{"_id": id}, update); err != nil {
		logrus.WithError(err).Error("Error al actualizar la categoría")
		return redirectError(c, categoryRoute, "Hubo un error al actualizar la categoría.")
	}

	return redirectSuccess(c, categoryRoute, "¡Categoría actualizada con éxito!")
}

// CategoryDelete removes a category by id.
func CategoryDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return redirectError(c, categoryRoute, "Hubo un error al eliminar la categoría.")
	}

	if _, err := database.Categories().DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		logrus.WithError(err).Error("Error al eliminar la categoría")
		return redirectError(c, categoryRoute, "Hubo un error al eliminar la categoría.")
	}

	return redirectSuccess(c, categoryRoute, "¡Categoría eliminada con éxito!")
}

// activeCategories fetches the active categories sorted by name, for use
// as the reference list in product forms.
func activeCategories(c *fiber.Ctx) []models.Category {
	opts := options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}})
	cursor, err := database.Categories().Find(c.Context(), bson.M{"activa": true}, opts)
	if err != nil {
		logrus.WithError(err).Error("Error al obtener categorías activas")
		return nil
	}
	var categorias []models.Category
	if err := cursor.All(c.Context(), &categorias); err != nil {
		logrus.WithError(err).Error("Error al obtener categorías activas")
		return nil
	}
	return categorias
}
