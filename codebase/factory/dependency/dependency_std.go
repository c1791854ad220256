package dependency

import (
	"context"

	"github.com/golangid/wedding-invitation/codebase/interfaces"
)

type deps struct {
	mongoDB   interfaces.MongoDatabase
	validator interfaces.Validator
}

// InitDependency constructor
func InitDependency(opts ...Option) Dependency {
	d := new(deps)
	for _, o := range opts {
		o(d)
	}

	return d
}

func (d *deps) GetMongoDatabase() interfaces.MongoDatabase {
	return d.mongoDB
}

func (d *deps) GetValidator() interfaces.Validator {
	return d.validator
}

func (d *deps) SetValidator(v interfaces.Validator) {
	d.validator = v
}

func (d *deps) Disconnect(ctx context.Context) error {
	return safeClose(ctx, d.mongoDB)
}
