package service

import (
	"github.com/golangid/wedding-invitation/codebase/factory"
	"github.com/golangid/wedding-invitation/codebase/factory/dependency"
	"github.com/golangid/wedding-invitation/codebase/factory/types"
	"github.com/golangid/wedding-invitation/config"
	"github.com/golangid/wedding-invitation/configs"
	"github.com/golangid/wedding-invitation/internal/modules/invitation"
)

// Service model
type Service struct {
	cfg        *config.Config
	deps       dependency.Dependency
	invitation *invitation.Module
	name       types.Service
}

// NewService in this service
func NewService(cfg *config.Config) *Service {
	deps := configs.LoadServiceConfigs(cfg)

	return &Service{
		cfg:        cfg,
		deps:       deps,
		invitation: invitation.NewModule(deps),
		name:       types.Service(cfg.ServiceName),
	}
}

// GetConfig method
func (s *Service) GetConfig() *config.Config {
	return s.cfg
}

// GetDependency method
func (s *Service) GetDependency() dependency.Dependency {
	return s.deps
}

// GetModules method
func (s *Service) GetModules() []factory.ModuleFactory {
	return []factory.ModuleFactory{
		s.invitation,
	}
}

// InvitationModule method
func (s *Service) InvitationModule() *invitation.Module {
	return s.invitation
}

// Name method
func (s *Service) Name() types.Service {
	return s.name
}
