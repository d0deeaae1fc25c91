package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupplierCategories is the fixed set of values accepted for a supplier's
// categoria field.
var SupplierCategories = []string{
	"Materia Prima",
	"Herrajes",
	"Mueble Terminado",
	"Servicios",
	"Otro",
}

// Supplier represents the proveedores collection. Email and RFC carry
// unique indexes (see database.EnsureIndexes).
type Supplier struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RazonSocial    string             `json:"razonSocial" bson:"razonSocial"`
	NombreContacto string             `json:"nombreContacto" bson:"nombreContacto"`
	Telefono       string             `json:"telefono" bson:"telefono"`
	Email          string             `json:"email" bson:"email"`
	RFC            string             `json:"rfc" bson:"rfc"`
	Categoria      string             `json:"categoria" bson:"categoria"`
	Direccion      Address            `json:"direccion" bson:"direccion"`
	Banco          string             `json:"banco,omitempty" bson:"banco,omitempty"`
	Clabe          string             `json:"clabe,omitempty" bson:"clabe,omitempty"`
	Activo         bool               `json:"activo" bson:"activo"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName specifies the collection name for Supplier.
func (Supplier) CollectionName() string {
	return "proveedores"
}

// SupplierForm is the typed input for supplier create/edit submissions.
// Banco and Clabe are optional bank details.
type SupplierForm struct {
	RazonSocial    string `validate:"required"`
	NombreContacto string `validate:"required"`
	Telefono       string `validate:"required"`
	Email          string `validate:"required,email"`
	RFC            string `validate:"required"`
	Categoria      string `validate:"required,oneof='Materia Prima' 'Herrajes' 'Mueble Terminado' 'Servicios' 'Otro'"`
	Direccion      Address
	Banco          string
	Clabe          string
	Activo         bool
}

// Document maps the form onto the stored field set. Email is lower-cased
// and RFC upper-cased, the normalization the unique indexes rely on.
func (f *SupplierForm) Document() Supplier {
	return Supplier{
		RazonSocial:    strings.TrimSpace(f.RazonSocial),
		NombreContacto: strings.TrimSpace(f.NombreContacto),
		Telefono:       strings.TrimSpace(f.Telefono),
		Email:          strings.ToLower(strings.TrimSpace(f.Email)),
		RFC:            strings.ToUpper(strings.TrimSpace(f.RFC)),
		Categoria:      f.Categoria,
		Direccion:      f.Direccion,
		Banco:          strings.TrimSpace(f.Banco),
		Clabe:          strings.TrimSpace(f.Clabe),
		Activo:         f.Activo,
	}
}
