package usecase

import (
	"context"

	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
)

// InvitationUsecase abstraction. Absent invitation is reported as nil result with nil error
type InvitationUsecase interface {
	GetAllInvitations(ctx context.Context) ([]shareddomain.Invitation, error)
	GetInvitation(ctx context.Context, id string) (*shareddomain.Invitation, error)
	CreateInvitation(ctx context.Context, data shareddomain.InvitationData) (*shareddomain.Invitation, error)
	UpdateInvitation(ctx context.Context, id string, data shareddomain.InvitationData) (*shareddomain.Invitation, error)
	DeleteInvitation(ctx context.Context, id string) (bool, error)

	GetTemplate(ctx context.Context, id string) (*shareddomain.Template, error)
	UpdateTemplate(ctx context.Context, id string, data shareddomain.Template) (*shareddomain.Template, error)
	GetFonts(ctx context.Context, id string) (*shareddomain.Fonts, error)
	UpdateFonts(ctx context.Context, id string, data shareddomain.Fonts) (*shareddomain.Fonts, error)
	GetContent(ctx context.Context, id string) (*shareddomain.Content, error)
	UpdateContent(ctx context.Context, id string, data shareddomain.Content) (*shareddomain.Content, error)
	GetBasicInfo(ctx context.Context, id string) (*shareddomain.BasicInfo, error)
	UpdateBasicInfo(ctx context.Context, id string, data shareddomain.BasicInfo) (*shareddomain.BasicInfo, error)
	GetCeremonyDetails(ctx context.Context, id string) (*shareddomain.CeremonyDetails, error)
	UpdateCeremonyDetails(ctx context.Context, id string, data shareddomain.CeremonyDetails) (*shareddomain.CeremonyDetails, error)
	GetAdditionalInfo(ctx context.Context, id string) (*shareddomain.AdditionalInfo, error)
	UpdateAdditionalInfo(ctx context.Context, id string, data shareddomain.AdditionalInfo) (*shareddomain.AdditionalInfo, error)

	GetAvailableTemplates(ctx context.Context) []shareddomain.TemplatePreview
}
