package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Administrator represents the administradores collection. Contrasena only
// ever holds a bcrypt hash.
type Administrator struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NombreUsuario string             `json:"nombreUsuario" bson:"nombreUsuario"`
	Correo        string             `json:"correo" bson:"correo"`
	Contrasena    string             `json:"-" bson:"contrasena"`
	Administrador bool               `json:"administrador" bson:"administrador"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CollectionName specifies the collection name for Administrator.
func (Administrator) CollectionName() string {
	return "administradores"
}

// AdministratorForm is the typed input for administrator create/edit
// submissions. Contrasena is the plaintext password; on edit it may be
// empty, meaning the stored hash is kept.
type AdministratorForm struct {
	NombreUsuario string `validate:"required"`
	Correo        string `validate:"required,email"`
	Contrasena    string
	Administrador bool
}

// SessionUser is the resolved user attached to an authenticated session
// and injected into the request context by the session gate.
type SessionUser struct {
	ID       string
	Username string
	IsAdmin  bool
}
