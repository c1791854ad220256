package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golangid/wedding-invitation/candihelper"
	"github.com/golangid/wedding-invitation/codebase/interfaces"
	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
	"github.com/golangid/wedding-invitation/validator"
)

// Validation messages
const (
	MsgColorHex           = "Color must be in hex format (e.g., #000000)"
	MsgTitleColorHex      = "Color must be in hex format"
	MsgBackgroundColorHex = "Background color must be in hex format"
	MsgAccentColorHex     = "Accent color must be in hex format"
	MsgLetteringPosition  = "Position must be 'center'"
	MsgTemplateIDRequired = "Template ID is required"
	MsgFrameType          = "Frame type must be 'square', 'arch', or 'circle'"
	MsgFontFamilyRequired = "Font family is required"
	MsgFontSize           = "Size must be 'S', 'M', or 'L'"
	MsgBodyFontColor      = "Color must be 'black' or 'white'"
	MsgInvalidEmail       = "Invalid email format"
	MsgVersionRequired    = "Version is required"
	MsgLanguageRequired   = "Language is required"
)

var (
	tagHexColor      = validator.TagHexColor6
	tagRequired      = "required"
	tagEmail         = "omitempty,email"
	tagFrameType     = "oneof=" + strings.Join(shareddomain.FrameTypeOptions, " ")
	tagFontSize      = "oneof=" + strings.Join(shareddomain.FontSizeOptions, " ")
	tagBodyFontColor = "oneof=" + strings.Join(shareddomain.BodyFontColorOptions, " ")
	tagPosition      = "eq=" + shareddomain.LetteringPositionOnly
	tagPersonName    = "max=" + strconv.Itoa(shareddomain.PersonNameMaxLength)

	// MsgPersonNameMax validation message of person name length
	MsgPersonNameMax = fmt.Sprintf("Name cannot exceed %d characters", shareddomain.PersonNameMaxLength)
)

// ValidateInvitationData validate whole invitation data, all failures are collected
func ValidateInvitationData(v interfaces.FieldValidator, data shareddomain.InvitationData) error {
	fc := newFieldCheck(v)
	validateTemplate(fc, "template", data.Template)
	validateFonts(fc, "fonts", data.Fonts)
	validateContent(fc, "content", data.Content)
	validateMetadata(fc, "metadata", data.Metadata)
	return fc.result()
}

// ValidateTemplate validate template section
func ValidateTemplate(v interfaces.FieldValidator, data shareddomain.Template) error {
	fc := newFieldCheck(v)
	validateTemplate(fc, "", data)
	return fc.result()
}

// ValidateFonts validate fonts section
func ValidateFonts(v interfaces.FieldValidator, data shareddomain.Fonts) error {
	fc := newFieldCheck(v)
	validateFonts(fc, "", data)
	return fc.result()
}

// ValidateContent validate content section
func ValidateContent(v interfaces.FieldValidator, data shareddomain.Content) error {
	fc := newFieldCheck(v)
	validateContent(fc, "", data)
	return fc.result()
}

// ValidateBasicInfo validate basic info of content
func ValidateBasicInfo(v interfaces.FieldValidator, data shareddomain.BasicInfo) error {
	fc := newFieldCheck(v)
	validateBasicInfo(fc, "", data)
	return fc.result()
}

// ValidateCeremonyDetails validate ceremony details of content
func ValidateCeremonyDetails(v interfaces.FieldValidator, data shareddomain.CeremonyDetails) error {
	fc := newFieldCheck(v)
	validateCeremonyDetails(fc, "", data)
	return fc.result()
}

// ValidateAdditionalInfo validate additional info of content
func ValidateAdditionalInfo(v interfaces.FieldValidator, data shareddomain.AdditionalInfo) error {
	fc := newFieldCheck(v)
	validateAdditionalInfo(fc, "", data)
	return fc.result()
}

func validateTemplate(fc *fieldCheck, path string, data shareddomain.Template) {
	validateLetteringEffect(fc, join(path, "openingEffect.letteringEffect"), data.OpeningEffect.LetteringEffect)
	validateDesign(fc, join(path, "design"), data.Design)
}

func validateLetteringEffect(fc *fieldCheck, path string, data shareddomain.LetteringEffect) {
	fc.check(join(path, "color"), data.Color, tagHexColor, MsgColorHex)
	fc.check(join(path, "position"), data.Position, tagPosition, MsgLetteringPosition)
}

func validateDesign(fc *fieldCheck, path string, data shareddomain.Design) {
	fc.check(join(path, "templateId"), data.TemplateID, tagRequired, MsgTemplateIDRequired)
	fc.check(join(path, "frame.type"), data.Frame.Type, tagFrameType, MsgFrameType)
	fc.check(join(path, "colors.background"), data.Colors.Background, tagHexColor, MsgBackgroundColorHex)
	fc.check(join(path, "colors.accent"), data.Colors.Accent, tagHexColor, MsgAccentColorHex)
}

func validateFonts(fc *fieldCheck, path string, data shareddomain.Fonts) {
	title := join(path, "title")
	fc.check(join(title, "family"), data.Title.Family, tagRequired, MsgFontFamilyRequired)
	fc.check(join(title, "color"), data.Title.Color, tagHexColor, MsgTitleColorHex)
	fc.check(join(title, "size"), data.Title.Size, tagFontSize, MsgFontSize)

	body := join(path, "body")
	fc.check(join(body, "family"), data.Body.Family, tagRequired, MsgFontFamilyRequired)
	fc.check(join(body, "color"), data.Body.Color, tagBodyFontColor, MsgBodyFontColor)
	fc.check(join(body, "size"), data.Body.Size, tagFontSize, MsgFontSize)
}

func validateContent(fc *fieldCheck, path string, data shareddomain.Content) {
	validateBasicInfo(fc, join(path, "basicInfo"), data.BasicInfo)
	validateCeremonyDetails(fc, join(path, "ceremonyDetails"), data.CeremonyDetails)
	validateAdditionalInfo(fc, join(path, "additionalInfo"), data.AdditionalInfo)
}

func validateBasicInfo(fc *fieldCheck, path string, data shareddomain.BasicInfo) {
	validatePerson(fc, join(path, "groom"), data.Groom)
	validatePerson(fc, join(path, "bride"), data.Bride)
}

func validatePerson(fc *fieldCheck, path string, data shareddomain.Person) {
	fc.check(join(path, "name"), data.Name, tagPersonName, MsgPersonNameMax)
}

// venue has no rule, date and time are free text
func validateCeremonyDetails(fc *fieldCheck, path string, data shareddomain.CeremonyDetails) {}

func validateAdditionalInfo(fc *fieldCheck, path string, data shareddomain.AdditionalInfo) {
	fc.check(join(path, "contactInfo.email"), data.ContactInfo.Email, tagEmail, MsgInvalidEmail)
}

func validateMetadata(fc *fieldCheck, path string, data shareddomain.Metadata) {
	fc.check(join(path, "version"), data.Version, tagRequired, MsgVersionRequired)
	fc.check(join(path, "language"), data.Language, tagRequired, MsgLanguageRequired)
}

// fieldCheck collect rule failures keyed by dotted json path
type fieldCheck struct {
	v    interfaces.FieldValidator
	mErr candihelper.MultiError
}

func newFieldCheck(v interfaces.FieldValidator) *fieldCheck {
	return &fieldCheck{v: v, mErr: candihelper.NewMultiError()}
}

func (fc *fieldCheck) check(field string, value interface{}, tag, message string) {
	if err := fc.v.ValidateVar(value, tag); err != nil {
		fc.mErr.Append(field, errors.New(message))
	}
}

func (fc *fieldCheck) result() error {
	if fc.mErr.HasError() {
		return fc.mErr
	}
	return nil
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
