package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SaleItem represents the detalles collection, one line item of a sale.
// VentaID, NombreCliente and NombreProducto are denormalized reference
// strings. Subtotal is always computed server-side.
type SaleItem struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	VentaID        string             `json:"venta_id" bson:"venta_id"`
	NombreCliente  string             `json:"nombreCliente" bson:"nombreCliente"`
	NombreProducto string             `json:"nombreProducto" bson:"nombreProducto"`
	Cantidad       int                `json:"cantidad" bson:"cantidad"`
	PrecioUnitario float64            `json:"precio_unitario" bson:"precio_unitario"`
	Descuento      float64            `json:"descuento" bson:"descuento"`
	Subtotal       float64            `json:"subtotal" bson:"subtotal"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName specifies the collection name for SaleItem.
func (SaleItem) CollectionName() string {
	return "detalles"
}

// SaleItemForm is the typed input for line-item create/edit submissions.
type SaleItemForm struct {
	VentaID        string  `validate:"required"`
	NombreCliente  string  `validate:"required"`
	NombreProducto string  `validate:"required"`
	Cantidad       int     `validate:"gte=1"`
	PrecioUnitario float64 `validate:"gte=0"`
	Descuento      float64 `validate:"gte=0"`
}

// Subtotal computes cantidad * precio_unitario - descuento.
func (f *SaleItemForm) Subtotal() float64 {
	return float64(f.Cantidad)*f.PrecioUnitario - f.Descuento
}

// Document maps the form onto the stored field set, with the subtotal
// recomputed from the submitted quantities.
func (f *SaleItemForm) Document() SaleItem {
	return SaleItem{
		VentaID:        f.VentaID,
		NombreCliente:  f.NombreCliente,
		NombreProducto: f.NombreProducto,
		Cantidad:       f.Cantidad,
		PrecioUnitario: f.PrecioUnitario,
		Descuento:      f.Descuento,
		Subtotal:       f.Subtotal(),
	}
}
