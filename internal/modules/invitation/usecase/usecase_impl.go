package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/golangid/wedding-invitation/internal/modules/invitation/domain"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/repository"
	"github.com/golangid/wedding-invitation/logger"
	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
	"github.com/golangid/wedding-invitation/tracer"
)

var availableTemplates = []struct{ id, name string }{
	{"default", "Default Template"},
	{"elegant", "Elegant Template"},
	{"modern", "Modern Template"},
	{"vintage", "Vintage Template"},
}

type invitationUsecaseImpl struct {
	repo repository.InvitationRepository
}

// NewInvitationUsecase usecase impl constructor
func NewInvitationUsecase(repo repository.InvitationRepository) InvitationUsecase {
	return &invitationUsecaseImpl{
		repo: repo,
	}
}

func (uc *invitationUsecaseImpl) GetAllInvitations(ctx context.Context) (data []shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:GetAllInvitations")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err = uc.repo.FetchAll(ctx)
	if err != nil {
		logger.LogEf("InvitationUsecase:GetAllInvitations: %v", err)
		return nil, err
	}
	trace.Log("count", len(data))
	return data, nil
}

func (uc *invitationUsecaseImpl) GetInvitation(ctx context.Context, id string) (data *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:GetInvitation")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err = uc.repo.Find(ctx, id)
	return resolve("GetInvitation", id, data, err)
}

func (uc *invitationUsecaseImpl) CreateInvitation(ctx context.Context, payload shareddomain.InvitationData) (data *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:CreateInvitation")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err = uc.repo.Save(ctx, payload)
	if err != nil {
		logger.LogEf("InvitationUsecase:CreateInvitation: %v", err)
		return nil, err
	}
	logger.LogIf("invitation %s created", data.ID)
	return data, nil
}

func (uc *invitationUsecaseImpl) UpdateInvitation(ctx context.Context, id string, payload shareddomain.InvitationData) (data *shareddomain.Invitation, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:UpdateInvitation")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err = uc.repo.Replace(ctx, id, payload)
	return resolve("UpdateInvitation", id, data, err)
}

func (uc *invitationUsecaseImpl) DeleteInvitation(ctx context.Context, id string) (deleted bool, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:DeleteInvitation")
	defer func() { trace.SetError(err); trace.Finish() }()

	deleted, err = uc.repo.Delete(ctx, id)
	if err != nil {
		logger.LogEf("InvitationUsecase:DeleteInvitation %s: %v", id, err)
		return false, err
	}
	trace.SetTag("deleted", deleted)
	return deleted, nil
}

func (uc *invitationUsecaseImpl) GetTemplate(ctx context.Context, id string) (res *shareddomain.Template, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:GetTemplate")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.GetInvitation(ctx, id)
	if data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Template, nil
}

func (uc *invitationUsecaseImpl) UpdateTemplate(ctx context.Context, id string, payload shareddomain.Template) (res *shareddomain.Template, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:UpdateTemplate")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.repo.UpdateTemplate(ctx, id, payload)
	if data, err = resolve("UpdateTemplate", id, data, err); data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Template, nil
}

func (uc *invitationUsecaseImpl) GetFonts(ctx context.Context, id string) (res *shareddomain.Fonts, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:GetFonts")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.GetInvitation(ctx, id)
	if data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Fonts, nil
}

func (uc *invitationUsecaseImpl) UpdateFonts(ctx context.Context, id string, payload shareddomain.Fonts) (res *shareddomain.Fonts, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:UpdateFonts")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.repo.UpdateFonts(ctx, id, payload)
	if data, err = resolve("UpdateFonts", id, data, err); data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Fonts, nil
}

func (uc *invitationUsecaseImpl) GetContent(ctx context.Context, id string) (res *shareddomain.Content, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:GetContent")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.GetInvitation(ctx, id)
	if data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Content, nil
}

func (uc *invitationUsecaseImpl) UpdateContent(ctx context.Context, id string, payload shareddomain.Content) (res *shareddomain.Content, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:UpdateContent")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.repo.UpdateContent(ctx, id, payload)
	if data, err = resolve("UpdateContent", id, data, err); data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Content, nil
}

func (uc *invitationUsecaseImpl) GetBasicInfo(ctx context.Context, id string) (res *shareddomain.BasicInfo, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:GetBasicInfo")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.GetInvitation(ctx, id)
	if data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Content.BasicInfo, nil
}

func (uc *invitationUsecaseImpl) UpdateBasicInfo(ctx context.Context, id string, payload shareddomain.BasicInfo) (res *shareddomain.BasicInfo, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:UpdateBasicInfo")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.repo.UpdateBasicInfo(ctx, id, payload)
	if data, err = resolve("UpdateBasicInfo", id, data, err); data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Content.BasicInfo, nil
}

func (uc *invitationUsecaseImpl) GetCeremonyDetails(ctx context.Context, id string) (res *shareddomain.CeremonyDetails, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:GetCeremonyDetails")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.GetInvitation(ctx, id)
	if data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Content.CeremonyDetails, nil
}

func (uc *invitationUsecaseImpl) UpdateCeremonyDetails(ctx context.Context, id string, payload shareddomain.CeremonyDetails) (res *shareddomain.CeremonyDetails, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:UpdateCeremonyDetails")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.repo.UpdateCeremonyDetails(ctx, id, payload)
	if data, err = resolve("UpdateCeremonyDetails", id, data, err); data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Content.CeremonyDetails, nil
}

func (uc *invitationUsecaseImpl) GetAdditionalInfo(ctx context.Context, id string) (res *shareddomain.AdditionalInfo, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:GetAdditionalInfo")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.GetInvitation(ctx, id)
	if data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Content.AdditionalInfo, nil
}

func (uc *invitationUsecaseImpl) UpdateAdditionalInfo(ctx context.Context, id string, payload shareddomain.AdditionalInfo) (res *shareddomain.AdditionalInfo, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "InvitationUsecase:UpdateAdditionalInfo")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := uc.repo.UpdateAdditionalInfo(ctx, id, payload)
	if data, err = resolve("UpdateAdditionalInfo", id, data, err); data == nil {
		return nil, err
	}
	return &data.WeddingInvitationData.Content.AdditionalInfo, nil
}

func (uc *invitationUsecaseImpl) GetAvailableTemplates(ctx context.Context) []shareddomain.TemplatePreview {
	trace, _ := tracer.StartTraceWithContext(ctx, "InvitationUsecase:GetAvailableTemplates")
	defer trace.Finish()

	templates := make([]shareddomain.TemplatePreview, 0, len(availableTemplates))
	for _, t := range availableTemplates {
		templates = append(templates, shareddomain.TemplatePreview{
			ID: t.id, Name: t.name, PreviewURL: fmt.Sprintf("/templates/%s/preview.jpg", t.id),
		})
	}
	return templates
}

// resolve translate missing invitation into absence, other repository errors are logged and returned
func resolve(op, id string, data *shareddomain.Invitation, err error) (*shareddomain.Invitation, error) {
	switch {
	case errors.Is(err, domain.ErrInvitationNotFound):
		return nil, nil
	case err != nil:
		logger.LogEf("InvitationUsecase:%s %s: %v", op, id, err)
		return nil, err
	}
	return data, nil
}
