package factory

import (
	"github.com/golangid/wedding-invitation/codebase/factory/types"
	"github.com/golangid/wedding-invitation/codebase/interfaces"
)

// ModuleFactory factory
type ModuleFactory interface {
	RESTHandler() interfaces.EchoRestHandler
	Name() types.Module
}
