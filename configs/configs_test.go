package configs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/golangid/wedding-invitation/codebase/factory/dependency"
)

type fakeMongo struct{ pingErr error }

func (fakeMongo) ReadDB() *mongo.Database  { return nil }
func (fakeMongo) WriteDB() *mongo.Database { return nil }
func (f fakeMongo) Health(ctx context.Context) map[string]error {
	return map[string]error{"mongo_write": f.pingErr}
}
func (fakeMongo) Disconnect(ctx context.Context) error { return nil }

func TestStorageAndHealth(t *testing.T) {
	t.Run("Testcase #1: json file store", func(t *testing.T) {
		deps := dependency.InitDependency()
		assert.Equal(t, "json", StorageName(deps))
		assert.Nil(t, HealthCheck(deps)(context.Background()))
		assert.NoError(t, deps.Disconnect(context.Background()))
	})

	t.Run("Testcase #2: mongodb store", func(t *testing.T) {
		errPing := errors.New("server selection timeout")
		deps := dependency.InitDependency(dependency.SetMongoDatabase(fakeMongo{pingErr: errPing}))
		assert.Equal(t, "mongodb", StorageName(deps))
		assert.Equal(t, map[string]error{"mongo_write": errPing}, HealthCheck(deps)(context.Background()))
	})
}
