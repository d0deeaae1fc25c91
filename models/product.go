package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dimensions holds the physical measurements of a product in centimeters.
type Dimensions struct {
	Largo float64 `json:"largo" bson:"largo" validate:"gte=0"`
	Ancho float64 `json:"ancho" bson:"ancho" validate:"gte=0"`
	Alto  float64 `json:"alto" bson:"alto" validate:"gte=0"`
}

// Product represents the productos collection. QR holds the relative URL
// path of the generated QR image, never a filesystem path.
type Product struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NombreCategoria string             `json:"nombreCategoria" bson:"nombreCategoria"`
	Nombre          string             `json:"nombre" bson:"nombre"`
	Descripcion     string             `json:"descripcion" bson:"descripcion"`
	Marca           string             `json:"marca" bson:"marca"`
	GarantiaMeses   int                `json:"garantia_meses" bson:"garantia_meses"`
	Color           string             `json:"color" bson:"color"`
	Material        string             `json:"material" bson:"material"`
	Medidas         Dimensions         `json:"medidas" bson:"medidas"`
	Peso            float64            `json:"peso" bson:"peso"`
	Precio          float64            `json:"precio" bson:"precio"`
	Activa          bool               `json:"activa" bson:"activa"`
	QR              string             `json:"qr,omitempty" bson:"qr,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName specifies the collection name for Product.
func (Product) CollectionName() string {
	return "productos"
}

// ProductForm is the typed input for product create/edit submissions.
type ProductForm struct {
	NombreCategoria string `validate:"required"`
	Nombre          string `validate:"required"`
	Descripcion     string `validate:"required"`
	Marca           string `validate:"required"`
	GarantiaMeses   int    `validate:"gte=0"`
	Color           string `validate:"required"`
	Material        string `validate:"required"`
	Medidas         Dimensions
	Peso            float64 `validate:"gte=0"`
	Precio          float64 `validate:"gte=0"`
	Activa          bool
}

// Document maps the form onto the stored field set.
func (f *ProductForm) Document() Product {
	return Product{
		NombreCategoria: f.NombreCategoria,
		Nombre:          f.Nombre,
		Descripcion:     f.Descripcion,
		Marca:           f.Marca,
		GarantiaMeses:   f.GarantiaMeses,
		Color:           f.Color,
		Material:        f.Material,
		Medidas:         f.Medidas,
		Peso:            f.Peso,
		Precio:          f.Precio,
		Activa:          f.Activa,
	}
}
