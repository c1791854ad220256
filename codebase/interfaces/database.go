package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDatabase abstraction
type MongoDatabase interface {
	ReadDB() *mongo.Database
	WriteDB() *mongo.Database
	Health(ctx context.Context) map[string]error
	Closer
}
