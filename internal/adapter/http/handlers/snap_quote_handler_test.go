package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"snapbook/internal/adapter/http/handlers/mocks"
	"snapbook/internal/domain/entities"
	"snapbook/internal/ratelimit"
	"snapbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSnapQuoteRouter(h *SnapQuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/snap-quotes", h.CreateSnapQuote)
	return r
}

func TestSnapQuoteHandler_CreateSnapQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISnapQuoteUseCase(ctrl)
		h := NewSnapQuoteHandler(uc, ratelimit.New(24*time.Hour))

		r := newSnapQuoteRouter(h)
		req := httptest.NewRequest(http.MethodPost, "/v1/snap-quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing image maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISnapQuoteUseCase(ctrl)
		h := NewSnapQuoteHandler(uc, ratelimit.New(24*time.Hour))

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, usecase.ErrMissingImage)

		r := newSnapQuoteRouter(h)
		req := httptest.NewRequest(http.MethodPost, "/v1/snap-quotes", bytes.NewBufferString(`{"description":"no photo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["code"] != "MISSING_IMAGE" {
			t.Fatalf("expected MISSING_IMAGE, got %v", body["code"])
		}
	})

	t.Run("priced quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISnapQuoteUseCase(ctrl)
		h := NewSnapQuoteHandler(uc, ratelimit.New(24*time.Hour))

		res := usecase.QuoteResult{
			Quote: entities.Quote{
				ID:           "sq-1",
				ServiceType:  entities.ServiceGutterCleaning,
				Confidence:   entities.ConfidenceHigh,
				BaseEstimate: 259,
				CeilingPrice: 298,
				Status:       entities.QuoteStatusQuoted,
			},
			BookingURL: "/book?quote_id=sq-1",
		}
		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateQuoteCommand) (usecase.QuoteResult, error) {
				if cmd.CustomerID != "user-1" {
					t.Fatalf("expected customer user-1, got %q", cmd.CustomerID)
				}
				if len(cmd.ImageRefs) != 1 {
					t.Fatalf("expected 1 image ref, got %d", len(cmd.ImageRefs))
				}
				return res, nil
			})

		r := newSnapQuoteRouter(h)
		req := httptest.NewRequest(http.MethodPost, "/v1/snap-quotes", bytes.NewBufferString(`{"image_refs":["s3://photos/p1.jpg"],"description":"clogged gutters"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["success"] != true {
			t.Fatalf("expected success true, got %v", body["success"])
		}
		if body["snap_quote_id"] != "sq-1" {
			t.Fatalf("expected snap_quote_id sq-1, got %v", body["snap_quote_id"])
		}
		quote, ok := body["quote"].(map[string]any)
		if !ok {
			t.Fatalf("missing quote block in %s", w.Body.String())
		}
		if quote["total_price"] != float64(298) {
			t.Fatalf("expected total_price 298, got %v", quote["total_price"])
		}
		if quote["price_display"] != "$298" {
			t.Fatalf("expected price_display $298, got %v", quote["price_display"])
		}
	})

	t.Run("rejection is 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISnapQuoteUseCase(ctrl)
		h := NewSnapQuoteHandler(uc, ratelimit.New(24*time.Hour))

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{
			Rejection: &usecase.Rejection{Reason: "vehicle_service", Message: "We connect you with home service pros, not auto mechanics."},
		}, nil)

		r := newSnapQuoteRouter(h)
		req := httptest.NewRequest(http.MethodPost, "/v1/snap-quotes", bytes.NewBufferString(`{"image_refs":["s3://photos/car.jpg"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["success"] != false || body["rejected"] != true {
			t.Fatalf("expected rejection shape, got %s", w.Body.String())
		}
		if body["reason"] != "vehicle_service" {
			t.Fatalf("expected reason vehicle_service, got %v", body["reason"])
		}
	})

	t.Run("anonymous rate limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISnapQuoteUseCase(ctrl)
		h := NewSnapQuoteHandler(uc, ratelimit.New(24*time.Hour))

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{
			Quote: entities.Quote{ID: "sq-n", Status: entities.QuoteStatusQuoted},
		}, nil).Times(anonymousDailyCap)

		r := newSnapQuoteRouter(h)
		for i := 0; i < anonymousDailyCap; i++ {
			req := httptest.NewRequest(http.MethodPost, "/v1/snap-quotes", bytes.NewBufferString(`{"image_refs":["s3://photos/p.jpg"]}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
			}
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/snap-quotes", bytes.NewBufferString(`{"image_refs":["s3://photos/p.jpg"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		if w.Header().Get("Retry-After") == "" {
			t.Fatalf("expected Retry-After header")
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["code"] != "RATE_LIMITED" {
			t.Fatalf("expected RATE_LIMITED, got %v", body["code"])
		}
	})

	t.Run("authenticated cap is higher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISnapQuoteUseCase(ctrl)
		h := NewSnapQuoteHandler(uc, ratelimit.New(24*time.Hour))

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{
			Quote: entities.Quote{ID: "sq-a", Status: entities.QuoteStatusQuoted},
		}, nil).Times(authenticatedDailyCap)

		r := newSnapQuoteRouter(h)
		for i := 0; i < authenticatedDailyCap; i++ {
			req := httptest.NewRequest(http.MethodPost, "/v1/snap-quotes", bytes.NewBufferString(`{"image_refs":["s3://photos/p.jpg"]}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-User-ID", "user-9")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
			}
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/snap-quotes", bytes.NewBufferString(`{"image_refs":["s3://photos/p.jpg"]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-9")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("usecase internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISnapQuoteUseCase(ctrl)
		h := NewSnapQuoteHandler(uc, ratelimit.New(24*time.Hour))

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(usecase.QuoteResult{}, errors.New("dynamo down"))

		r := newSnapQuoteRouter(h)
		req := httptest.NewRequest(http.MethodPost, "/v1/snap-quotes", bytes.NewBufferString(`{"image_refs":["s3://photos/p.jpg"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
