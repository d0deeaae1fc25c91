package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JuaMGLz/Muebleria/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Initialize connects to MongoDB and selects the application database.
func Initialize(cfg *config.Config) error {
	if cfg.MongoURI == "" {
		return fmt.Errorf("database connection URI is empty")
	}

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(50).
		SetMinPoolSize(10).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db = client.Database(cfg.MongoDBName)
	logrus.WithField("database", cfg.MongoDBName).Info("Database connection established")
	return nil
}

// GetDB returns the application database handle.
func GetDB() *mongo.Database {
	return db
}

// Close disconnects the MongoDB client.
func Close() error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logrus.WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	return nil
}

// Collection accessors, one per entity.

func Administrators() *mongo.Collection { return db.Collection("administradores") }
func Categories() *mongo.Collection     { return db.Collection("categorias") }
func Clients() *mongo.Collection        { return db.Collection("clientes") }
func Products() *mongo.Collection       { return db.Collection("productos") }
func Inventories() *mongo.Collection    { return db.Collection("inventarios") }
func Suppliers() *mongo.Collection      { return db.Collection("proveedores") }
func Sales() *mongo.Collection          { return db.Collection("ventas") }
func SaleItems() *mongo.Collection      { return db.Collection("detalles") }
