package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the uniqueness constraints the schemas rely on:
// supplier email and RFC are always unique; administrator username and
// email only when adminUnique is enabled in configuration.
func EnsureIndexes(ctx context.Context, adminUnique bool) error {
	supplierIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "rfc", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := Suppliers().Indexes().CreateMany(ctx, supplierIndexes); err != nil {
		return fmt.Errorf("failed to create supplier indexes: %w", err)
	}

	if adminUnique {
		adminIndexes := []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "nombreUsuario", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "correo", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		}
		if _, err := Administrators().Indexes().CreateMany(ctx, adminIndexes); err != nil {
			return fmt.Errorf("failed to create administrator indexes: %w", err)
		}
	}

	return nil
}
