package resthandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo"

	"github.com/golangid/wedding-invitation/candihelper"
	"github.com/golangid/wedding-invitation/codebase/interfaces"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/domain"
	"github.com/golangid/wedding-invitation/internal/modules/invitation/usecase"
	"github.com/golangid/wedding-invitation/logger"
	shareddomain "github.com/golangid/wedding-invitation/pkg/shared/domain"
	"github.com/golangid/wedding-invitation/tracer"
	"github.com/golangid/wedding-invitation/wrapper"
)

// Response messages
const (
	MsgNotFound         = "Wedding invitation not found"
	MsgValidationFailed = "Validation failed"
)

// Schema id of each request payload
const (
	SchemaInvitationData  = "invitation/data"
	SchemaTemplate        = "invitation/template"
	SchemaFonts           = "invitation/fonts"
	SchemaContent         = "invitation/content"
	SchemaBasicInfo       = "invitation/basic_info"
	SchemaCeremonyDetails = "invitation/ceremony_details"
	SchemaAdditionalInfo  = "invitation/additional_info"
)

// RestHandler handler
type RestHandler struct {
	uc        usecase.InvitationUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.InvitationUsecase, validator interfaces.Validator) *RestHandler {
	return &RestHandler{
		uc:        uc,
		validator: validator,
	}
}

// Mount handler with root "/api"
func (h *RestHandler) Mount(root *echo.Group) {
	invitations := root.Group("/invitations")
	invitations.GET("", h.getAllInvitations)
	invitations.POST("", h.createInvitation)
	invitations.GET("/:id", h.getInvitation)
	invitations.PUT("/:id", h.updateInvitation)
	invitations.DELETE("/:id", h.deleteInvitation)

	invitations.GET("/:id/template", h.getTemplate)
	invitations.PUT("/:id/template", h.updateTemplate)
	invitations.GET("/:id/fonts", h.getFonts)
	invitations.PUT("/:id/fonts", h.updateFonts)
	invitations.GET("/:id/content", h.getContent)
	invitations.PUT("/:id/content", h.updateContent)
	invitations.GET("/:id/content/basic-info", h.getBasicInfo)
	invitations.PUT("/:id/content/basic-info", h.updateBasicInfo)
	invitations.GET("/:id/content/ceremony-details", h.getCeremonyDetails)
	invitations.PUT("/:id/content/ceremony-details", h.updateCeremonyDetails)
	invitations.GET("/:id/content/additional-info", h.getAdditionalInfo)
	invitations.PUT("/:id/content/additional-info", h.updateAdditionalInfo)

	root.GET("/templates", h.getTemplates)
}

func (h *RestHandler) getAllInvitations(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:GetAllInvitations")
	defer trace.Finish()

	data, err := h.uc.GetAllInvitations(ctx)
	if err != nil {
		return internalError(c, trace, err, "Failed to retrieve invitations")
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "", data).JSON(c.Response())
}

func (h *RestHandler) getInvitation(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:GetInvitation")
	defer trace.Finish()

	data, err := h.uc.GetInvitation(ctx, c.Param("id"))
	return respond(c, trace, data, err, "", "Failed to retrieve invitation")
}

func (h *RestHandler) createInvitation(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:CreateInvitation")
	defer trace.Finish()

	payload, err := bindPayload(c, h.validator, SchemaInvitationData, shareddomain.NewInvitationData, domain.ValidateInvitationData)
	if err != nil {
		return h.payloadError(c, trace, err)
	}

	data, err := h.uc.CreateInvitation(ctx, payload)
	if err != nil {
		return internalError(c, trace, err, "Failed to create invitation")
	}
	return wrapper.NewHTTPResponse(http.StatusCreated, "Wedding invitation created successfully", data).JSON(c.Response())
}

func (h *RestHandler) updateInvitation(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:UpdateInvitation")
	defer trace.Finish()

	payload, err := bindPayload(c, h.validator, SchemaInvitationData, shareddomain.NewInvitationData, domain.ValidateInvitationData)
	if err != nil {
		return h.payloadError(c, trace, err)
	}

	data, err := h.uc.UpdateInvitation(ctx, c.Param("id"), payload)
	return respond(c, trace, data, err, "Wedding invitation updated successfully", "Failed to update invitation")
}

func (h *RestHandler) deleteInvitation(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:DeleteInvitation")
	defer trace.Finish()

	deleted, err := h.uc.DeleteInvitation(ctx, c.Param("id"))
	if err != nil {
		return internalError(c, trace, err, "Failed to delete invitation")
	}
	if !deleted {
		return wrapper.NewHTTPResponse(http.StatusNotFound, MsgNotFound).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, "Wedding invitation deleted successfully").JSON(c.Response())
}

func (h *RestHandler) getTemplate(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:GetTemplate")
	defer trace.Finish()

	data, err := h.uc.GetTemplate(ctx, c.Param("id"))
	return respond(c, trace, data, err, "", "Failed to retrieve template")
}

func (h *RestHandler) updateTemplate(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:UpdateTemplate")
	defer trace.Finish()

	payload, err := bindPayload(c, h.validator, SchemaTemplate, shareddomain.NewTemplate, domain.ValidateTemplate)
	if err != nil {
		return h.payloadError(c, trace, err)
	}

	data, err := h.uc.UpdateTemplate(ctx, c.Param("id"), payload)
	return respond(c, trace, data, err, "Template updated successfully", "Failed to update template")
}

func (h *RestHandler) getFonts(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:GetFonts")
	defer trace.Finish()

	data, err := h.uc.GetFonts(ctx, c.Param("id"))
	return respond(c, trace, data, err, "", "Failed to retrieve fonts")
}

func (h *RestHandler) updateFonts(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:UpdateFonts")
	defer trace.Finish()

	payload, err := bindPayload(c, h.validator, SchemaFonts, shareddomain.NewFonts, domain.ValidateFonts)
	if err != nil {
		return h.payloadError(c, trace, err)
	}

	data, err := h.uc.UpdateFonts(ctx, c.Param("id"), payload)
	return respond(c, trace, data, err, "Fonts updated successfully", "Failed to update fonts")
}

func (h *RestHandler) getContent(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:GetContent")
	defer trace.Finish()

	data, err := h.uc.GetContent(ctx, c.Param("id"))
	return respond(c, trace, data, err, "", "Failed to retrieve content")
}

func (h *RestHandler) updateContent(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:UpdateContent")
	defer trace.Finish()

	payload, err := bindPayload(c, h.validator, SchemaContent, shareddomain.NewContent, domain.ValidateContent)
	if err != nil {
		return h.payloadError(c, trace, err)
	}

	data, err := h.uc.UpdateContent(ctx, c.Param("id"), payload)
	return respond(c, trace, data, err, "Content updated successfully", "Failed to update content")
}

func (h *RestHandler) getBasicInfo(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:GetBasicInfo")
	defer trace.Finish()

	data, err := h.uc.GetBasicInfo(ctx, c.Param("id"))
	return respond(c, trace, data, err, "", "Failed to retrieve basic info")
}

func (h *RestHandler) updateBasicInfo(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:UpdateBasicInfo")
	defer trace.Finish()

	payload, err := bindPayload(c, h.validator, SchemaBasicInfo, shareddomain.NewBasicInfo, domain.ValidateBasicInfo)
	if err != nil {
		return h.payloadError(c, trace, err)
	}

	data, err := h.uc.UpdateBasicInfo(ctx, c.Param("id"), payload)
	return respond(c, trace, data, err, "Basic info updated successfully", "Failed to update basic info")
}

func (h *RestHandler) getCeremonyDetails(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:GetCeremonyDetails")
	defer trace.Finish()

	data, err := h.uc.GetCeremonyDetails(ctx, c.Param("id"))
	return respond(c, trace, data, err, "", "Failed to retrieve ceremony details")
}

func (h *RestHandler) updateCeremonyDetails(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:UpdateCeremonyDetails")
	defer trace.Finish()

	payload, err := bindPayload(c, h.validator, SchemaCeremonyDetails, shareddomain.NewCeremonyDetails, domain.ValidateCeremonyDetails)
	if err != nil {
		return h.payloadError(c, trace, err)
	}

	data, err := h.uc.UpdateCeremonyDetails(ctx, c.Param("id"), payload)
	return respond(c, trace, data, err, "Ceremony details updated successfully", "Failed to update ceremony details")
}

func (h *RestHandler) getAdditionalInfo(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:GetAdditionalInfo")
	defer trace.Finish()

	data, err := h.uc.GetAdditionalInfo(ctx, c.Param("id"))
	return respond(c, trace, data, err, "", "Failed to retrieve additional info")
}

func (h *RestHandler) updateAdditionalInfo(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:UpdateAdditionalInfo")
	defer trace.Finish()

	payload, err := bindPayload(c, h.validator, SchemaAdditionalInfo, shareddomain.NewAdditionalInfo, domain.ValidateAdditionalInfo)
	if err != nil {
		return h.payloadError(c, trace, err)
	}

	data, err := h.uc.UpdateAdditionalInfo(ctx, c.Param("id"), payload)
	return respond(c, trace, data, err, "Additional info updated successfully", "Failed to update additional info")
}

func (h *RestHandler) getTemplates(c echo.Context) error {
	trace, ctx := tracer.StartTraceWithContext(c.Request().Context(), "InvitationDeliveryREST:GetTemplates")
	defer trace.Finish()

	return wrapper.NewHTTPResponse(http.StatusOK, "", h.uc.GetAvailableTemplates(ctx)).JSON(c.Response())
}

// payloadError answer 400 with per field errors, unexpected failure (e.g. unknown schema) answer 500
func (h *RestHandler) payloadError(c echo.Context, trace interfaces.Tracer, err error) error {
	var mErr candihelper.MultiError
	if !errors.As(err, &mErr) {
		return internalError(c, trace, err, wrapper.MsgInternalServerError)
	}
	trace.Log("validation", mErr.ToMap())
	return wrapper.NewHTTPResponse(http.StatusBadRequest, MsgValidationFailed, mErr).JSON(c.Response())
}

// bindPayload check raw body against json schema, decode it on top of section defaults then run field rules
func bindPayload[T any](c echo.Context, v interfaces.Validator, schemaID string, defaults func() T, validate func(interfaces.FieldValidator, T) error) (payload T, err error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || !utf8.Valid(body) {
		return payload, candihelper.NewMultiError().Append("body", errors.New("Invalid JSON body"))
	}
	if err = v.ValidateDocument(schemaID, body); err != nil {
		return payload, err
	}

	payload = defaults()
	if err = json.Unmarshal(body, &payload); err != nil {
		return payload, candihelper.NewMultiError().Append("body", errors.New("Invalid JSON body"))
	}
	return payload, validate(v, payload)
}

func respond[T any](c echo.Context, trace interfaces.Tracer, data *T, err error, successMessage, failedMessage string) error {
	if err != nil {
		return internalError(c, trace, err, failedMessage)
	}
	if data == nil {
		return wrapper.NewHTTPResponse(http.StatusNotFound, MsgNotFound).JSON(c.Response())
	}
	return wrapper.NewHTTPResponse(http.StatusOK, successMessage, data).JSON(c.Response())
}

func internalError(c echo.Context, trace interfaces.Tracer, err error, message string) error {
	trace.SetError(err)
	logger.LogEf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return wrapper.NewHTTPResponse(http.StatusInternalServerError, message).JSON(c.Response())
}
