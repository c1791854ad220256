package dependency

import (
	"context"

	"github.com/golangid/wedding-invitation/codebase/interfaces"
)

// Dependency base
type Dependency interface {
	// get primary mongo database, nil when service run with in memory store
	GetMongoDatabase() interfaces.MongoDatabase

	GetValidator() interfaces.Validator
	SetValidator(v interfaces.Validator)

	interfaces.Closer
}

// Option func type
type Option func(*deps)

// SetMongoDatabase option func, set primary mongo database instance
func SetMongoDatabase(db interfaces.MongoDatabase) Option {
	return func(d *deps) {
		d.mongoDB = db
	}
}

// SetValidator option func
func SetValidator(validator interfaces.Validator) Option {
	return func(d *deps) {
		d.validator = validator
	}
}

func safeClose(ctx context.Context, d interfaces.Closer) error {
	if d != nil {
		return d.Disconnect(ctx)
	}
	return nil
}
