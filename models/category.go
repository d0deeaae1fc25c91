package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category represents the categorias collection.
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nombre      string             `json:"nombre" bson:"nombre"`
	Descripcion string             `json:"descripcion" bson:"descripcion"`
	Activa      bool               `json:"activa" bson:"activa"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName specifies the collection name for Category.
func (Category) CollectionName() string {
	return "categorias"
}

// CategoryForm is the typed input for category create/edit submissions.
type CategoryForm struct {
	Nombre      string `validate:"required"`
	Descripcion string `validate:"required"`
	Activa      bool
}

// Document maps the form onto the stored field set.
func (f *CategoryForm) Document() Category {
	return Category{
		Nombre:      f.Nombre,
		Descripcion: f.Descripcion,
		Activa:      f.Activa,
	}
}
