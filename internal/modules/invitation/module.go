package invitation

import (
	"github.com/golangid/wedding-invitation/codebase/factory/dependency"
	"github.com/golangid/wedding-invitation/codebase/factory/types"
	"github.com/golangid/wedding-invitation/codebase/interfaces"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/delivery/resthandler"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/repository"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/usecase"
)

// Invitation module name
const Invitation types.Module = "invitation"

// Module model
type Module struct {
	uc          usecase.InvitationUsecase
	restHandler *resthandler.RestHandler
}

// NewModule module constructor, panic when invitation store cannot be opened
func NewModule(deps dependency.Dependency) *Module {
	repo, err := repository.NewInvitationRepository(deps)
	if err != nil {
		panic(err)
	}

	var mod Module
	mod.uc = usecase.NewInvitationUsecase(repo)
	mod.restHandler = resthandler.NewRestHandler(mod.uc, deps.GetValidator())
	return &mod
}

// Usecase method
func (m *Module) Usecase() usecase.InvitationUsecase {
	return m.uc
}

// RESTHandler method
func (m *Module) RESTHandler() interfaces.EchoRestHandler {
	return m.restHandler
}

// Name get module name
func (m *Module) Name() types.Module {
	return Invitation
}
