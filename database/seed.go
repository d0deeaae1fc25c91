package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/JuaMGLz/Muebleria/models"
)

// SeedData bootstraps an empty installation: a default administrator
// account and a starter set of categories. Collections that already hold
// documents are left untouched.
func SeedData(ctx context.Context) error {
	if err := seedAdministrator(ctx); err != nil {
		return err
	}
	return seedCategories(ctx)
}

func seedAdministrator(ctx context.Context) error {
	count, err := Administrators().CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := models.Administrator{
		NombreUsuario: "admin",
		Correo:        "admin@muebleria.local",
		Contrasena:    string(hash),
		Administrador: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := Administrators().InsertOne(ctx, admin); err != nil {
		return err
	}

	logrus.WithField("usuario", admin.NombreUsuario).
		Warn("Default administrator created, change its password")
	return nil
}

func seedCategories(ctx context.Context) error {
	count, err := Categories().CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	categories := []interface{}{
		models.Category{Nombre: "Salas", Descripcion: "Sillones, sofás y salas modulares", Activa: true, CreatedAt: now, UpdatedAt: now},
		models.Category{Nombre: "Comedores", Descripcion: "Mesas y sillas de comedor", Activa: true, CreatedAt: now, UpdatedAt: now},
		models.Category{Nombre: "Recámaras", Descripcion: "Camas, cabeceras y burós", Activa: true, CreatedAt: now, UpdatedAt: now},
		models.Category{Nombre: "Oficina", Descripcion: "Escritorios y libreros", Activa: true, CreatedAt: now, UpdatedAt: now},
	}
	if _, err := Categories().InsertMany(ctx, categories); err != nil {
		return err
	}

	logrus.WithField("count", len(categories)).Info("Starter categories created")
	return nil
}
