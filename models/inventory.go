package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inventory represents the inventarios collection. Products are referenced
// by display name, not by id.
type Inventory struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NombreProducto string             `json:"nombreProducto" bson:"nombreProducto"`
	Stock          int                `json:"stock" bson:"stock"`
	Ubicacion      string             `json:"ubicacion" bson:"ubicacion"`
	Sucursal       string             `json:"sucursal" bson:"sucursal"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName specifies the collection name for Inventory.
func (Inventory) CollectionName() string {
	return "inventarios"
}

// InventoryForm is the typed input for inventory create/edit submissions.
type InventoryForm struct {
	NombreProducto string `validate:"required"`
	Stock          int    `validate:"gte=0"`
	Ubicacion      string `validate:"required"`
	Sucursal       string `validate:"required"`
}

// Document maps the form onto the stored field set.
func (f *InventoryForm) Document() Inventory {
	return Inventory{
		NombreProducto: f.NombreProducto,
		Stock:          f.Stock,
		Ubicacion:      f.Ubicacion,
		Sucursal:       f.Sucursal,
	}
}
