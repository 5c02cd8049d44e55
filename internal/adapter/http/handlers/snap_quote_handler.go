package handlers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	request "snapbook/internal/adapter/http/dto/request"
	response "snapbook/internal/adapter/http/dto/response"
	"snapbook/internal/infrastructure/metrics"
	"snapbook/internal/ratelimit"
	"snapbook/internal/usecase"
	"snapbook/pkg"

	"github.com/gin-gonic/gin"
)

// Daily photo-analysis caps. Authenticated users get twice the anonymous
// allowance; anonymous callers are keyed by client IP.
const (
	anonymousDailyCap     = 5
	authenticatedDailyCap = 10
)

var (
	errInvalidSnapQuotePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// SnapQuoteHandler handles photo-to-quote requests.

type SnapQuoteHandler struct {
	usecase usecase.ISnapQuoteUseCase
	limiter *ratelimit.Limiter
}

func NewSnapQuoteHandler(uc usecase.ISnapQuoteUseCase, limiter *ratelimit.Limiter) *SnapQuoteHandler {
	return &SnapQuoteHandler{usecase: uc, limiter: limiter}
}

// CreateSnapQuote analyzes the submitted photos and returns either a priced
// quote or a typed rejection. Rejections are HTTP 200: the request worked,
// the photo just is not quotable.
func (h *SnapQuoteHandler) CreateSnapQuote(c *gin.Context) {
	var payload request.SnapQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSnapQuotePayload.HTTPStatus, errInvalidSnapQuotePayload.ToHTTPError())
		return
	}

	userID := c.GetHeader("X-User-ID")
	key, limit := h.limitKey(c, userID)
	if !h.limiter.Allow(key, limit) {
		metrics.RateLimited.Inc()
		retryAfter := int(math.Ceil(h.limiter.RetryAfter(key).Seconds()))
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Daily photo analysis limit reached. Try again tomorrow.", http.StatusTooManyRequests)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteCommand{
		CustomerID:  userID,
		ImageRefs:   payload.ResolveImageRefs(),
		Description: payload.Description,
		Address:     payload.Address,
	})
	if err != nil {
		appErr := mapSnapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if res.Rejection != nil {
		c.JSON(http.StatusOK, response.FromRejection(*res.Rejection))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteResult(res))
}

func (h *SnapQuoteHandler) limitKey(c *gin.Context, userID string) (string, int) {
	if userID != "" {
		return "user:" + userID, authenticatedDailyCap
	}
	return "ip:" + c.ClientIP(), anonymousDailyCap
}

func mapSnapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingImage):
		return pkg.NewDomainErrorSimple("MISSING_IMAGE", "At least one image is required", http.StatusBadRequest)
	default:
		log.Printf("[snapquote][handler] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
