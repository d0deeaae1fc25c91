package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sale represents the ventas collection. NombreCliente stores the client's
// id as a plain string, resolved to a display name at read time. QR holds
// the relative URL path of the generated receipt QR image.
type Sale struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NombreCliente string             `json:"nombreCliente" bson:"nombreCliente"`
	Fecha         time.Time          `json:"fecha" bson:"fecha"`
	Estado        string             `json:"estado" bson:"estado"`
	MetodoPago    string             `json:"metodo_pago" bson:"metodo_pago"`
	Subtotal      float64            `json:"subtotal" bson:"subtotal"`
	Descuento     float64            `json:"descuento" bson:"descuento"`
	Impuestos     float64            `json:"impuestos" bson:"impuestos"`
	Total         float64            `json:"total" bson:"total"`
	Notas         string             `json:"notas,omitempty" bson:"notas,omitempty"`
	QR            string             `json:"qr,omitempty" bson:"qr,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName specifies the collection name for Sale.
func (Sale) CollectionName() string {
	return "ventas"
}

// SaleForm is the typed input for sale create/edit submissions.
// NombreCliente carries the selected client's hex id.
type SaleForm struct {
	NombreCliente string `validate:"required"`
	Fecha         time.Time
	Estado        string  `validate:"required"`
	MetodoPago    string  `validate:"required"`
	Subtotal      float64 `validate:"gte=0"`
	Descuento     float64 `validate:"gte=0"`
	Impuestos     float64 `validate:"gte=0"`
	Total         float64 `validate:"gte=0"`
	Notas         string
}

// Document maps the form onto the stored field set.
func (f *SaleForm) Document() Sale {
	return Sale{
		NombreCliente: f.NombreCliente,
		Fecha:         f.Fecha,
		Estado:        f.Estado,
		MetodoPago:    f.MetodoPago,
		Subtotal:      f.Subtotal,
		Descuento:     f.Descuento,
		Impuestos:     f.Impuestos,
		Total:         f.Total,
		Notas:         f.Notas,
	}
}
