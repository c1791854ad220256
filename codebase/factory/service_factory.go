package factory

import (
	"github.com/golangid/wedding-invitation/codebase/factory/dependency"
	"github.com/golangid/wedding-invitation/codebase/factory/types"
)

// ServiceFactory factory
type ServiceFactory interface {
	GetDependency() dependency.Dependency
	GetModules() []ModuleFactory
	Name() types.Service
}
