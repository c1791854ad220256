package configs

import (
	"context"
	"io"

	"github.com/golangid/wedding-invitation/codebase/factory/dependency"
	"github.com/golangid/wedding-invitation/config"
	"github.com/golangid/wedding-invitation/config/database"
	"github.com/golangid/wedding-invitation/config/env"
	"github.com/golangid/wedding-invitation/validator"
	"github.com/golangid/wedding-invitation/wrapper"
)

// LoadServiceConfigs load selected dependency configuration in this service
func LoadServiceConfigs(cfg *config.Config) (deps dependency.Dependency) {
	cfg.LoadFunc(func(ctx context.Context) []io.Closer {
		jsonSchemaValidator, err := validator.NewValidator()
		if err != nil {
			panic(err)
		}

		opts := []dependency.Option{
			dependency.SetValidator(jsonSchemaValidator),
		}
		if env.BaseEnv().UseMongo() {
			opts = append(opts, dependency.SetMongoDatabase(database.InitMongoDB(ctx)))
		}

		deps = dependency.InitDependency(opts...)
		return nil
	})

	return deps
}

// StorageName name of active invitation store, reported in health check
func StorageName(deps dependency.Dependency) string {
	if deps.GetMongoDatabase() != nil {
		return "mongodb"
	}
	return "json"
}

// HealthCheck ping every external dependency
func HealthCheck(deps dependency.Dependency) wrapper.HealthCheckFunc {
	return func(ctx context.Context) map[string]error {
		if db := deps.GetMongoDatabase(); db != nil {
			return db.Health(ctx)
		}
		return nil
	}
}
