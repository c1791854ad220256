package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/golangid/wedding-invitation/candihelper"
	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
	"github.com/golangid/wedding-invitation/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fieldValidator = validator.NewStructValidator()

// tagRecorder record every rule tag it receives, fail the ones listed
type tagRecorder struct {
	tags []string
	fail map[string]bool
}

func (r *tagRecorder) ValidateVar(value interface{}, tag string) error {
	r.tags = append(r.tags, tag)
	if r.fail[tag] {
		return errors.New("failed")
	}
	return nil
}

func validInvitationData() shareddomain.InvitationData {
	data := shareddomain.NewInvitationData()
	data.Content.BasicInfo.Groom.Name = "김민준"
	data.Content.BasicInfo.Bride.Name = "이서연"
	data.Content.AdditionalInfo.ContactInfo.Email = "wedding@example.com"
	return data
}

func errorMap(t *testing.T, err error) map[string]string {
	require.Error(t, err)
	mErr, ok := err.(candihelper.MultiError)
	require.True(t, ok, "must be multi error")
	return mErr.ToMap()
}

func TestValidateInvitationData(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*shareddomain.InvitationData)
		wantErrs map[string]string
	}{
		{
			name:   "Testcase #1: Positive, default data",
			modify: func(d *shareddomain.InvitationData) {},
		},
		{
			name: "Testcase #2: Positive, boundary values",
			modify: func(d *shareddomain.InvitationData) {
				d.Template.OpeningEffect.LetteringEffect.Color = "#000000"
				d.Template.Design.Frame.Type = "square"
				d.Fonts.Title.Size = "L"
				d.Fonts.Body.Color = "black"
				d.Content.BasicInfo.Groom.Name = strings.Repeat("a", 20)
				d.Content.BasicInfo.Bride.Name = strings.Repeat("가", 20)
				d.Content.AdditionalInfo.ContactInfo.Email = "a@b.com"
			},
		},
		{
			name: "Testcase #3: Positive, empty email and uppercase hex",
			modify: func(d *shareddomain.InvitationData) {
				d.Content.AdditionalInfo.ContactInfo.Email = ""
				d.Template.Design.Colors.Accent = "#D4AF37"
			},
		},
		{
			name: "Testcase #4: Negative, color not hex",
			modify: func(d *shareddomain.InvitationData) {
				d.Template.OpeningEffect.LetteringEffect.Color = "red"
			},
			wantErrs: map[string]string{"template.openingEffect.letteringEffect.color": MsgColorHex},
		},
		{
			name: "Testcase #5: Negative, frame type hexagon",
			modify: func(d *shareddomain.InvitationData) {
				d.Template.Design.Frame.Type = "hexagon"
			},
			wantErrs: map[string]string{"template.design.frame.type": MsgFrameType},
		},
		{
			name: "Testcase #6: Negative, font size XL",
			modify: func(d *shareddomain.InvitationData) {
				d.Fonts.Title.Size = "XL"
			},
			wantErrs: map[string]string{"fonts.title.size": MsgFontSize},
		},
		{
			name: "Testcase #7: Negative, body color blue",
			modify: func(d *shareddomain.InvitationData) {
				d.Fonts.Body.Color = "blue"
			},
			wantErrs: map[string]string{"fonts.body.color": MsgBodyFontColor},
		},
		{
			name: "Testcase #8: Negative, name of 21 characters",
			modify: func(d *shareddomain.InvitationData) {
				d.Content.BasicInfo.Bride.Name = strings.Repeat("가", 21)
			},
			wantErrs: map[string]string{"content.basicInfo.bride.name": "Name cannot exceed 20 characters"},
		},
		{
			name: "Testcase #9: Negative, invalid email",
			modify: func(d *shareddomain.InvitationData) {
				d.Content.AdditionalInfo.ContactInfo.Email = "not-an-email"
			},
			wantErrs: map[string]string{"content.additionalInfo.contactInfo.email": MsgInvalidEmail},
		},
		{
			name: "Testcase #10: Negative, all failures collected",
			modify: func(d *shareddomain.InvitationData) {
				d.Template.OpeningEffect.LetteringEffect.Position = "top"
				d.Template.Design.TemplateID = ""
				d.Template.Design.Colors.Background = "#fff"
				d.Template.Design.Colors.Accent = "#gggggg"
				d.Fonts.Title.Family = ""
				d.Fonts.Title.Color = "black"
				d.Fonts.Body.Size = "m"
				d.Metadata.Version = ""
				d.Metadata.Language = ""
			},
			wantErrs: map[string]string{
				"template.openingEffect.letteringEffect.position": MsgLetteringPosition,
				"template.design.templateId":                      MsgTemplateIDRequired,
				"template.design.colors.background":               MsgBackgroundColorHex,
				"template.design.colors.accent":                   MsgAccentColorHex,
				"fonts.title.family":                              MsgFontFamilyRequired,
				"fonts.title.color":                               MsgTitleColorHex,
				"fonts.body.size":                                 MsgFontSize,
				"metadata.version":                                MsgVersionRequired,
				"metadata.language":                               MsgLanguageRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validInvitationData()
			tt.modify(&data)

			err := ValidateInvitationData(fieldValidator, data)
			if tt.wantErrs == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErrs, errorMap(t, err))
		})
	}
}

func TestValidateSection(t *testing.T) {
	t.Run("Testcase #1: Template", func(t *testing.T) {
		template := shareddomain.NewTemplate()
		assert.NoError(t, ValidateTemplate(fieldValidator, template))

		template.Design.Frame.Type = "hexagon"
		assert.Equal(t, map[string]string{"design.frame.type": MsgFrameType}, errorMap(t, ValidateTemplate(fieldValidator, template)))
	})
	t.Run("Testcase #2: Fonts", func(t *testing.T) {
		fonts := shareddomain.NewFonts()
		assert.NoError(t, ValidateFonts(fieldValidator, fonts))

		fonts.Body.Color = "white"
		fonts.Body.Size = "M"
		assert.NoError(t, ValidateFonts(fieldValidator, fonts))

		fonts.Body.Family = ""
		assert.Equal(t, map[string]string{"body.family": MsgFontFamilyRequired}, errorMap(t, ValidateFonts(fieldValidator, fonts)))
	})
	t.Run("Testcase #3: Content", func(t *testing.T) {
		content := shareddomain.NewContent()
		assert.NoError(t, ValidateContent(fieldValidator, content))

		content.BasicInfo.Groom.Name = strings.Repeat("x", 21)
		content.AdditionalInfo.ContactInfo.Email = "a@"
		assert.Equal(t, map[string]string{
			"basicInfo.groom.name":             MsgPersonNameMax,
			"additionalInfo.contactInfo.email": MsgInvalidEmail,
		}, errorMap(t, ValidateContent(fieldValidator, content)))
	})
	t.Run("Testcase #4: Basic info", func(t *testing.T) {
		basicInfo := shareddomain.NewBasicInfo()
		basicInfo.Groom.Name = strings.Repeat("민", 20)
		assert.NoError(t, ValidateBasicInfo(fieldValidator, basicInfo))

		basicInfo.Bride.Name = strings.Repeat("서", 21)
		assert.Equal(t, map[string]string{"bride.name": MsgPersonNameMax}, errorMap(t, ValidateBasicInfo(fieldValidator, basicInfo)))
	})
	t.Run("Testcase #5: Ceremony details free text", func(t *testing.T) {
		assert.NoError(t, ValidateCeremonyDetails(fieldValidator, shareddomain.CeremonyDetails{Date: "someday", Time: "noon"}))
	})
	t.Run("Testcase #6: Additional info", func(t *testing.T) {
		info := shareddomain.NewAdditionalInfo()
		info.ContactInfo.Email = "a@b.com"
		assert.NoError(t, ValidateAdditionalInfo(fieldValidator, info))

		info.ContactInfo.Email = "not-an-email"
		assert.Equal(t, map[string]string{"contactInfo.email": MsgInvalidEmail}, errorMap(t, ValidateAdditionalInfo(fieldValidator, info)))
	})
	t.Run("Testcase #7: Rules run through given validator", func(t *testing.T) {
		recorder := &tagRecorder{fail: map[string]bool{tagRequired: true}}
		assert.Equal(t, map[string]string{
			"title.family": MsgFontFamilyRequired,
			"body.family":  MsgFontFamilyRequired,
		}, errorMap(t, ValidateFonts(recorder, shareddomain.NewFonts())))
		assert.Equal(t, []string{tagRequired, tagHexColor, tagFontSize, tagRequired, tagBodyFontColor, tagFontSize}, recorder.tags)
	})
}
