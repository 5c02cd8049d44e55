package handlers

import (
	"errors"
	"log"
	"net/http"

	request "snapbook/internal/adapter/http/dto/request"
	response "snapbook/internal/adapter/http/dto/response"
	"snapbook/internal/usecase"
	"snapbook/pkg"

	"github.com/gin-gonic/gin"
)

// ProviderJobsHandler serves the provider-facing side of booked jobs.

type ProviderJobsHandler struct {
	usecase usecase.IProviderJobsUseCase
}

func NewProviderJobsHandler(uc usecase.IProviderJobsUseCase) *ProviderJobsHandler {
	return &ProviderJobsHandler{usecase: uc}
}

// GetJobContext returns the pre-arrival briefing for an engagement.
func (h *ProviderJobsHandler) GetJobContext(c *gin.Context) {
	providerID := c.GetHeader("X-Provider-ID")

	jc, err := h.usecase.JobContext(c.Request.Context(), c.Param("engagement_id"), providerID)
	if err != nil {
		appErr := mapProviderJobsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobContext(jc))
}

// UploadArrivalPhoto stores on-site evidence and reports whether scope was
// auto-verified.
func (h *ProviderJobsHandler) UploadArrivalPhoto(c *gin.Context) {
	providerID := c.GetHeader("X-Provider-ID")

	var payload request.ArrivalPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_PHOTO_REF", "photo_ref is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.AttachArrivalPhoto(c.Request.Context(), c.Param("engagement_id"), providerID, payload.PhotoRef)
	if err != nil {
		appErr := mapProviderJobsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromArrivalResult(res))
}

func mapProviderJobsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingProviderID):
		return pkg.NewDomainErrorSimple("LOGIN_REQUIRED", "Provider login required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotAssignedProvider):
		return pkg.NewDomainErrorSimple("NOT_ASSIGNED", "Not assigned to this job", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Snap quote record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingPhotoRef):
		return pkg.NewDomainErrorSimple("MISSING_PHOTO_REF", "photo_ref is required", http.StatusBadRequest)
	default:
		log.Printf("[providerjobs][handler] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
