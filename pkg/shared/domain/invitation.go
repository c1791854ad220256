package domain

// Invitation model
type Invitation struct {
	ID                    string         `json:"id" bson:"-"`
	WeddingInvitationData InvitationData `json:"weddingInvitationData" bson:"wedding_invitation"`
}

// InvitationData all sections of one invitation document
type InvitationData struct {
	Template Template `json:"template" bson:"template"`
	Fonts    Fonts    `json:"fonts" bson:"fonts"`
	Content  Content  `json:"content" bson:"content"`
	Metadata Metadata `json:"metadata" bson:"metadata"`
}

// Template section
type Template struct {
	OpeningEffect OpeningEffect `json:"openingEffect" bson:"opening_effect"`
	Design        Design        `json:"design" bson:"design"`
}

// OpeningEffect model
type OpeningEffect struct {
	Enabled         bool            `json:"enabled" bson:"enabled"`
	LetteringEffect LetteringEffect `json:"letteringEffect" bson:"lettering_effect"`
}

// LetteringEffect model
type LetteringEffect struct {
	Enabled  bool   `json:"enabled" bson:"enabled"`
	Color    string `json:"color" bson:"color"`
	Position string `json:"position" bson:"position"`
}

// Design model
type Design struct {
	TemplateID string `json:"templateId" bson:"template_id"`
	Frame      Frame  `json:"frame" bson:"frame"`
	Photo      Photo  `json:"photo" bson:"photo"`
	Colors     Colors `json:"colors" bson:"colors"`
}

// Frame model
type Frame struct {
	Type    string   `json:"type" bson:"type"`
	Options []string `json:"options" bson:"options"`
}

// Photo model, only the url is stored
type Photo struct {
	URL      string `json:"url" bson:"url"`
	Required bool   `json:"required" bson:"required"`
}

// Colors model
type Colors struct {
	Background string `json:"background" bson:"background"`
	Accent     string `json:"accent" bson:"accent"`
}

// Fonts section
type Fonts struct {
	Title TitleFont `json:"title" bson:"title"`
	Body  BodyFont  `json:"body" bson:"body"`
}

// TitleFont model
type TitleFont struct {
	Family      string   `json:"family" bson:"family"`
	Color       string   `json:"color" bson:"color"`
	Size        string   `json:"size" bson:"size"`
	SizeOptions []string `json:"sizeOptions" bson:"size_options"`
}

// BodyFont model
type BodyFont struct {
	Family       string   `json:"family" bson:"family"`
	Color        string   `json:"color" bson:"color"`
	ColorOptions []string `json:"colorOptions" bson:"color_options"`
	Size         string   `json:"size" bson:"size"`
	SizeOptions  []string `json:"sizeOptions" bson:"size_options"`
}

// Content section
type Content struct {
	BasicInfo       BasicInfo       `json:"basicInfo" bson:"basic_info"`
	CeremonyDetails CeremonyDetails `json:"ceremonyDetails" bson:"ceremony_details"`
	AdditionalInfo  AdditionalInfo  `json:"additionalInfo" bson:"additional_info"`
}

// BasicInfo content subsection
type BasicInfo struct {
	Groom        Person `json:"groom" bson:"groom"`
	Bride        Person `json:"bride" bson:"bride"`
	Relationship string `json:"relationship" bson:"relationship"`
}

// Person model
type Person struct {
	Name      string `json:"name" bson:"name"`
	MaxLength int    `json:"maxLength" bson:"max_length"`
	Required  bool   `json:"required" bson:"required"`
}

// CeremonyDetails content subsection
type CeremonyDetails struct {
	Date  string `json:"date" bson:"date"`
	Time  string `json:"time" bson:"time"`
	Venue Venue  `json:"venue" bson:"venue"`
}

// Venue model
type Venue struct {
	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	Contact string `json:"contact" bson:"contact"`
}

// AdditionalInfo content subsection
type AdditionalInfo struct {
	Parents     Parents     `json:"parents" bson:"parents"`
	Message     string      `json:"message" bson:"message"`
	ContactInfo ContactInfo `json:"contactInfo" bson:"contact_info"`
}

// Parents model
type Parents struct {
	GroomParents ParentPair `json:"groomParents" bson:"groom_parents"`
	BrideParents ParentPair `json:"brideParents" bson:"bride_parents"`
}

// ParentPair model
type ParentPair struct {
	Father string `json:"father" bson:"father"`
	Mother string `json:"mother" bson:"mother"`
}

// ContactInfo model
type ContactInfo struct {
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// Metadata section, timestamps are maintained by the store
type Metadata struct {
	CreatedDate  string `json:"createdDate" bson:"created_date"`
	LastModified string `json:"lastModified" bson:"last_modified"`
	Version      string `json:"version" bson:"version"`
	Language     string `json:"language" bson:"language"`
}

// TemplatePreview item of the template catalog
type TemplatePreview struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PreviewURL string `json:"preview_url"`
}
