package repository

import (
	"context"

	"github.com/golangid/wedding-invitation/codebase/factory/dependency"
	"github.com/golangid/wedding-invitation/config/env"
	"github.com/golangid/wedding-invitation/logger"
	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
)

// InvitationRepository abstract interface, absent invitation reported as domain.ErrInvitationNotFound
type InvitationRepository interface {
	FetchAll(ctx context.Context) ([]shareddomain.Invitation, error)
	Find(ctx context.Context, id string) (*shareddomain.Invitation, error)
	Save(ctx context.Context, data shareddomain.InvitationData) (*shareddomain.Invitation, error)
	Replace(ctx context.Context, id string, data shareddomain.InvitationData) (*shareddomain.Invitation, error)
	UpdateTemplate(ctx context.Context, id string, data shareddomain.Template) (*shareddomain.Invitation, error)
	UpdateFonts(ctx context.Context, id string, data shareddomain.Fonts) (*shareddomain.Invitation, error)
	UpdateContent(ctx context.Context, id string, data shareddomain.Content) (*shareddomain.Invitation, error)
	UpdateBasicInfo(ctx context.Context, id string, data shareddomain.BasicInfo) (*shareddomain.Invitation, error)
	UpdateCeremonyDetails(ctx context.Context, id string, data shareddomain.CeremonyDetails) (*shareddomain.Invitation, error)
	UpdateAdditionalInfo(ctx context.Context, id string, data shareddomain.AdditionalInfo) (*shareddomain.Invitation, error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}

// NewInvitationRepository use mongo when configured, fallback to in memory store snapshotted to json file
func NewInvitationRepository(deps dependency.Dependency) (InvitationRepository, error) {
	if mongoDB := deps.GetMongoDatabase(); mongoDB != nil {
		return NewInvitationRepoMongo(mongoDB.ReadDB(), mongoDB.WriteDB(), env.BaseEnv().DbMongoCollection), nil
	}

	logger.LogYellow("Invitation repository: mongodb is not configured, using json file " + env.BaseEnv().JSONDatabasePath)
	return NewInvitationRepoInMem(env.BaseEnv().JSONDatabasePath)
}
