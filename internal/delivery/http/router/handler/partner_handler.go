package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "parivartan/internal/delivery/context"
	"parivartan/internal/delivery/http/response"
	"parivartan/internal/domain/entity"
	"parivartan/internal/domain/repository"
	"parivartan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PartnerHandler holds dependencies for the partner self-service handlers:
// profile and document submission.
type PartnerHandler struct {
	partnerUc  usecase.PartnerUsecase
	documentUc usecase.DocumentUsecase
	logger     *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(partnerUc usecase.PartnerUsecase, documentUc usecase.DocumentUsecase, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{
		partnerUc:  partnerUc,
		documentUc: documentUc,
		logger:     logger,
	}
}

// GetProfile returns the partner's current record.
func (h *PartnerHandler) GetProfile(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	partner, err := h.partnerUc.GetProfile(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "")
}

// UpdateProfile applies a field-wise merge; absent fields stay untouched.
func (h *PartnerHandler) UpdateProfile(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	var update *repository.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	partner, err := h.partnerUc.UpdateProfile(c.Request().Context(), principalID, update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "Profile updated")
}

// SubmitDocument accepts one document as a multipart upload. Form fields:
// "type" for the document type, "document" for the file.
func (h *PartnerHandler) SubmitDocument(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	docType := entity.DocumentType(c.FormValue("type"))

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing document file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	doc, err := h.documentUc.Submit(c.Request().Context(), principalID, &usecase.DocumentUpload{
		Type:        docType,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, doc, "Document submitted")
}

// ListDocuments returns the partner's live documents.
func (h *PartnerHandler) ListDocuments(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	partner, err := h.partnerUc.GetProfile(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner.Documents, "")
}

// SubmitForReview flags a submission-complete partner for admin review.
func (h *PartnerHandler) SubmitForReview(c echo.Context) error {
	principalID, ok := deliverycontext.GetPrincipalID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
	}

	if err := h.documentUc.SubmitForReview(c.Request().Context(), principalID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Submitted for review")
}
