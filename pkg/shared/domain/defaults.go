package domain

// Closed value sets of the enumerated fields
var (
	FrameTypeOptions      = []string{"square", "arch", "circle"}
	FontSizeOptions       = []string{"S", "M", "L"}
	BodyFontColorOptions  = []string{"black", "white"}
	LetteringPositionOnly = "center"
)

const (
	// PersonNameMaxLength max characters of groom/bride name
	PersonNameMaxLength = 20

	defaultTemplateID = "default"
	defaultFontFamily = "default"
	defaultBlack      = "#000000"
	defaultWhite      = "#ffffff"
	defaultVersion    = "1.0"
	defaultLanguage   = "ko"
)

// NewInvitationData returns invitation data filled with section defaults,
// request payloads are decoded on top of it so omitted fields keep the default
func NewInvitationData() InvitationData {
	return InvitationData{
		Template: NewTemplate(),
		Fonts:    NewFonts(),
		Content:  NewContent(),
		Metadata: NewMetadata(),
	}
}

// NewTemplate default template section
func NewTemplate() Template {
	return Template{
		OpeningEffect: OpeningEffect{
			LetteringEffect: LetteringEffect{
				Color:    defaultBlack,
				Position: LetteringPositionOnly,
			},
		},
		Design: Design{
			TemplateID: defaultTemplateID,
			Frame: Frame{
				Type:    FrameTypeOptions[0],
				Options: copyStrings(FrameTypeOptions),
			},
			Colors: Colors{
				Background: defaultWhite,
				Accent:     defaultBlack,
			},
		},
	}
}

// NewFonts default fonts section
func NewFonts() Fonts {
	return Fonts{
		Title: TitleFont{
			Family:      defaultFontFamily,
			Color:       defaultBlack,
			Size:        FontSizeOptions[0],
			SizeOptions: copyStrings(FontSizeOptions),
		},
		Body: BodyFont{
			Family:       defaultFontFamily,
			Color:        BodyFontColorOptions[0],
			ColorOptions: copyStrings(BodyFontColorOptions),
			Size:         FontSizeOptions[0],
			SizeOptions:  copyStrings(FontSizeOptions),
		},
	}
}

// NewContent default content section
func NewContent() Content {
	return Content{
		BasicInfo:       NewBasicInfo(),
		CeremonyDetails: NewCeremonyDetails(),
		AdditionalInfo:  NewAdditionalInfo(),
	}
}

// NewBasicInfo default basic info
func NewBasicInfo() BasicInfo {
	return BasicInfo{
		Groom: Person{MaxLength: PersonNameMaxLength},
		Bride: Person{MaxLength: PersonNameMaxLength},
	}
}

// NewCeremonyDetails default ceremony details
func NewCeremonyDetails() CeremonyDetails {
	return CeremonyDetails{}
}

// NewAdditionalInfo default additional info
func NewAdditionalInfo() AdditionalInfo {
	return AdditionalInfo{}
}

// NewMetadata default metadata, timestamps are left for the store
func NewMetadata() Metadata {
	return Metadata{
		Version:  defaultVersion,
		Language: defaultLanguage,
	}
}

// Clone deep copy invitation
func (i Invitation) Clone() Invitation {
	i.WeddingInvitationData = i.WeddingInvitationData.Clone()
	return i
}

// Clone deep copy invitation data, the option lists are the only shared references
func (d InvitationData) Clone() InvitationData {
	d.Template = d.Template.Clone()
	d.Fonts = d.Fonts.Clone()
	return d
}

// Clone deep copy template
func (t Template) Clone() Template {
	t.Design.Frame.Options = copyStrings(t.Design.Frame.Options)
	return t
}

// Clone deep copy fonts
func (f Fonts) Clone() Fonts {
	f.Title.SizeOptions = copyStrings(f.Title.SizeOptions)
	f.Body.ColorOptions = copyStrings(f.Body.ColorOptions)
	f.Body.SizeOptions = copyStrings(f.Body.SizeOptions)
	return f
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	return append(make([]string, 0, len(src)), src...)
}
