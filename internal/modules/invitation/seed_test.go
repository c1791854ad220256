package invitation

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/golangid/wedding-invitation/api"
	"github.com/golangid/wedding-invitation/candihelper"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/repository"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/usecase"
	mockusecase "github.com/golangid/wedding-invitation/pkg/mocks/modules/invitation/usecase"
	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
	"github.com/golangid/wedding-invitation/validator"
)

func TestSeedSampleData(t *testing.T) {
	repo, err := repository.NewInvitationRepoInMem(filepath.Join(t.TempDir(), "invitations.json"))
	require.NoError(t, err)
	uc := usecase.NewInvitationUsecase(repo)
	ctx := context.Background()

	ids, err := Seed(ctx, uc, validator.NewStructValidator(), api.SeedInvitations())
	require.NoError(t, err)
	assert.Len(t, ids, 5)

	all, err := uc.GetAllInvitations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, ids[0], all[0].ID)
	assert.Equal(t, "elegant", all[0].WeddingInvitationData.Template.Design.TemplateID)
	assert.NotEmpty(t, all[0].WeddingInvitationData.Metadata.CreatedDate)
}

func TestSeed(t *testing.T) {
	errStore := errors.New("disk full")

	tests := []struct {
		name     string
		source   string
		createFn func(uc *mockusecase.InvitationUsecase)
		wantIDs  []string
		wantErr  bool
	}{
		{
			name:    "Testcase #1: not a json array",
			source:  `{"template":{}}`,
			wantErr: true,
		},
		{
			name:    "Testcase #2: empty array",
			source:  `[]`,
			wantIDs: nil,
		},
		{
			name:   "Testcase #3: omitted section keep default",
			source: `[{"content":{"basicInfo":{"groom":{"name":"민준"}}}}]`,
			createFn: func(uc *mockusecase.InvitationUsecase) {
				uc.On("CreateInvitation", mock.Anything, mock.MatchedBy(func(data shareddomain.InvitationData) bool {
					return data.Template.Design.TemplateID == "default" && data.Content.BasicInfo.Groom.Name == "민준"
				})).Return(&shareddomain.Invitation{ID: "a"}, nil).Once()
			},
			wantIDs: []string{"a"},
		},
		{
			name:    "Testcase #4: invalid entry stop seeding",
			source:  `[{"fonts":{"body":{"color":"red"}}}]`,
			wantErr: true,
		},
		{
			name:   "Testcase #5: store failure keep created ids",
			source: `[{}, {}]`,
			createFn: func(uc *mockusecase.InvitationUsecase) {
				uc.On("CreateInvitation", mock.Anything, mock.Anything).Return(&shareddomain.Invitation{ID: "a"}, nil).Once()
				uc.On("CreateInvitation", mock.Anything, mock.Anything).Return(nil, errStore).Once()
			},
			wantIDs: []string{"a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewInvitationUsecase(t)
			if tt.createFn != nil {
				tt.createFn(uc)
			}

			ids, err := Seed(context.Background(), uc, validator.NewStructValidator(), []byte(tt.source))
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSeedInvalidEntryReportFields(t *testing.T) {
	uc := mockusecase.NewInvitationUsecase(t)

	_, err := Seed(context.Background(), uc, validator.NewStructValidator(), []byte(`[{"fonts":{"body":{"color":"red"}}}]`))
	var mErr candihelper.MultiError
	require.True(t, errors.As(err, &mErr))
	assert.Contains(t, mErr.ToMap(), "fonts.body.color")
}
