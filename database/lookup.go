package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuaMGLz/Muebleria/models"
)

// ClientNotFoundLabel is the placeholder shown when a sale references a
// client id that no longer resolves.
const ClientNotFoundLabel = "Cliente no encontrado"

// ClientNames resolves a set of stored client id strings to display names
// with a single $in query. Ids that are not valid ObjectIDs or that match
// no document are absent from the result map.
func ClientNames(ctx context.Context, ids []string) (map[string]string, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, oid)
	}

	names := make(map[string]string, len(objectIDs))
	if len(objectIDs) == 0 {
		return names, nil
	}

	cursor, err := Clients().Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}

	for _, cl := range clients {
		names[cl.ID.Hex()] = cl.Nombre
	}
	return names, nil
}

// ClientName resolves a single stored client id string, falling back to
// the not-found placeholder.
func ClientName(ctx context.Context, id string) string {
	names, err := ClientNames(ctx, []string{id})
	if err != nil {
		return ClientNotFoundLabel
	}
	if name, ok := names[id]; ok {
		return name
	}
	return ClientNotFoundLabel
}
