package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the embedded postal address shared by clients and suppliers.
type Address struct {
	Calle     string `json:"calle" bson:"calle" validate:"required"`
	Numero    string `json:"numero" bson:"numero" validate:"required"`
	Colonia   string `json:"colonia" bson:"colonia" validate:"required"`
	Municipio string `json:"municipio" bson:"municipio" validate:"required"`
	Estado    string `json:"estado" bson:"estado" validate:"required"`
	CP        string `json:"cp" bson:"cp" validate:"required"`
}

// Client represents the clientes collection.
type Client struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nombre    string             `json:"nombre" bson:"nombre"`
	Telefono  string             `json:"telefono" bson:"telefono"`
	Email     string             `json:"email" bson:"email"`
	RFC       string             `json:"rfc" bson:"rfc"`
	Direccion Address            `json:"direccion" bson:"direccion"`
	Activo    bool               `json:"activo" bson:"activo"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName specifies the collection name for Client.
func (Client) CollectionName() string {
	return "clientes"
}

// ClientForm is the typed input for client create/edit submissions.
type ClientForm struct {
	Nombre    string `validate:"required"`
	Telefono  string `validate:"required"`
	Email     string `validate:"required,email"`
	RFC       string `validate:"required"`
	Direccion Address
	Activo    bool
}

// Document maps the form onto the stored field set.
func (f *ClientForm) Document() Client {
	return Client{
		Nombre:    f.Nombre,
		Telefono:  f.Telefono,
		Email:     f.Email,
		RFC:       f.RFC,
		Direccion: f.Direccion,
		Activo:    f.Activo,
	}
}
