package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvitationData(t *testing.T) {
	data := NewInvitationData()

	assert.Equal(t, "#000000", data.Template.OpeningEffect.LetteringEffect.Color)
	assert.Equal(t, "center", data.Template.OpeningEffect.LetteringEffect.Position)
	assert.Equal(t, "default", data.Template.Design.TemplateID)
	assert.Equal(t, "square", data.Template.Design.Frame.Type)
	assert.Equal(t, []string{"square", "arch", "circle"}, data.Template.Design.Frame.Options)
	assert.Equal(t, "#ffffff", data.Template.Design.Colors.Background)
	assert.Equal(t, "S", data.Fonts.Title.Size)
	assert.Equal(t, "black", data.Fonts.Body.Color)
	assert.Equal(t, 20, data.Content.BasicInfo.Groom.MaxLength)
	assert.Equal(t, "1.0", data.Metadata.Version)
	assert.Equal(t, "ko", data.Metadata.Language)
	assert.Empty(t, data.Metadata.CreatedDate)
}

func TestDecodeOnDefaults(t *testing.T) {
	body := `{"template":{"design":{"templateId":"elegant","colors":{"accent":"#d4af37"}}},"content":{"basicInfo":{"groom":{"name":"김민준"}}}}`

	data := NewInvitationData()
	require.NoError(t, json.Unmarshal([]byte(body), &data))

	assert.Equal(t, "elegant", data.Template.Design.TemplateID)
	assert.Equal(t, "#d4af37", data.Template.Design.Colors.Accent)
	assert.Equal(t, "#ffffff", data.Template.Design.Colors.Background, "omitted field keeps default")
	assert.Equal(t, "김민준", data.Content.BasicInfo.Groom.Name)
	assert.Equal(t, 20, data.Content.BasicInfo.Groom.MaxLength)
	assert.Equal(t, "1.0", data.Metadata.Version)
}

func TestWireNames(t *testing.T) {
	b, err := json.Marshal(Invitation{ID: "abc", WeddingInvitationData: NewInvitationData()})
	require.NoError(t, err)

	for _, key := range []string{
		`"id":"abc"`, `"weddingInvitationData"`, `"openingEffect"`, `"letteringEffect"`, `"templateId"`,
		`"sizeOptions"`, `"colorOptions"`, `"basicInfo"`, `"ceremonyDetails"`, `"additionalInfo"`,
		`"groomParents"`, `"contactInfo"`, `"createdDate"`, `"lastModified"`,
	} {
		assert.Contains(t, string(b), key)
	}
}

func TestClone(t *testing.T) {
	origin := Invitation{ID: "1", WeddingInvitationData: NewInvitationData()}
	cloned := origin.Clone()

	cloned.WeddingInvitationData.Template.Design.Frame.Options[0] = "changed"
	cloned.WeddingInvitationData.Fonts.Title.SizeOptions[0] = "XL"
	cloned.WeddingInvitationData.Fonts.Body.ColorOptions[0] = "blue"
	cloned.WeddingInvitationData.Content.BasicInfo.Groom.Name = "other"

	assert.Equal(t, "square", origin.WeddingInvitationData.Template.Design.Frame.Options[0])
	assert.Equal(t, "S", origin.WeddingInvitationData.Fonts.Title.SizeOptions[0])
	assert.Equal(t, "black", origin.WeddingInvitationData.Fonts.Body.ColorOptions[0])
	assert.Empty(t, origin.WeddingInvitationData.Content.BasicInfo.Groom.Name)

	var empty InvitationData
	assert.Nil(t, empty.Clone().Template.Design.Frame.Options)
}
