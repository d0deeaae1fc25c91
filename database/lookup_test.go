package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuaMGLz/Muebleria/config"
	"github.com/JuaMGLz/Muebleria/models"
)

// testDB connects to the instance named by TEST_MONGODB_URI, skipping the
// test when none is configured.
func testDB(t *testing.T) {
	t.Helper()
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}

	cfg := &config.Config{MongoURI: uri, MongoDBName: "muebleria_test"}
	require.NoError(t, Initialize(cfg))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = GetDB().Drop(ctx)
		_ = Close()
	})
}

func TestClientNamesBatchLookup(t *testing.T) {
	testDB(t)
	ctx := context.Background()

	juan := models.Client{Nombre: "Juan Pérez", Telefono: "33", Email: "j@x.com", RFC: "X", Activo: true}
	ana := models.Client{Nombre: "Ana López", Telefono: "81", Email: "a@x.com", RFC: "Y", Activo: true}

	res, err := Clients().InsertOne(ctx, juan)
	require.NoError(t, err)
	juanID := res.InsertedID.(primitive.ObjectID).Hex()

	res, err = Clients().InsertOne(ctx, ana)
	require.NoError(t, err)
	anaID := res.InsertedID.(primitive.ObjectID).Hex()

	names, err := ClientNames(ctx, []string{juanID, anaID, juanID, "no-es-objectid"})
	require.NoError(t, err)

	assert.Len(t, names, 2)
	assert.Equal(t, "Juan Pérez", names[juanID])
	assert.Equal(t, "Ana López", names[anaID])
}

func TestClientNameFallback(t *testing.T) {
	testDB(t)
	ctx := context.Background()

	assert.Equal(t, ClientNotFoundLabel, ClientName(ctx, "665f1c2ab3d4e5f6a7b8c9d0"))
	assert.Equal(t, ClientNotFoundLabel, ClientName(ctx, "basura"))
}

func TestEnsureIndexesSupplierUniqueness(t *testing.T) {
	testDB(t)
	ctx := context.Background()

	require.NoError(t, EnsureIndexes(ctx, false))

	doc := models.Supplier{
		RazonSocial: "Maderas SA", NombreContacto: "Ana", Telefono: "81",
		Email: "ventas@maderas.com", RFC: "MNO950505XXX",
		Categoria: "Materia Prima", Activo: true,
	}
	_, err := Suppliers().InsertOne(ctx, doc)
	require.NoError(t, err)

	_, err = Suppliers().InsertOne(ctx, doc)
	assert.Error(t, err)
}
