package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "snapbook/internal/adapter/http/dto/request"
	response "snapbook/internal/adapter/http/dto/response"
	"snapbook/internal/usecase"
	"snapbook/pkg"

	"github.com/gin-gonic/gin"
)

// BookingHandler converts quotes into scheduled engagements.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// BookSnapQuote books a quote for the calling customer. The body is
// optional; without it the job is scheduled for the next morning.
func (h *BookingHandler) BookSnapQuote(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		appErr := pkg.NewDomainErrorSimple("LOGIN_REQUIRED", "Login required to book", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.BookQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	confirmation, err := h.usecase.Book(c.Request.Context(), usecase.BookQuoteCommand{
		QuoteID:       c.Param("quote_id"),
		CustomerID:    userID,
		ScheduledDate: payload.ScheduledDate,
		ScheduledTime: payload.ScheduledTime,
	})
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingConfirmation(confirmation))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCustomerID):
		return pkg.NewDomainErrorSimple("LOGIN_REQUIRED", "Login required to book", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyBooked):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_BOOKED", "This quote has already been booked", http.StatusConflict)
	default:
		log.Printf("[booking][handler] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
