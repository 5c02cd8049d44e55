package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"snapbook/internal/domain/entities"
	mock_interfaces "snapbook/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSnapQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("missing image", func(t *testing.T) {
		uc := NewSnapQuoteUseCase(nil, nil)
		_, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{ImageRefs: []string{"  "}})
		if !errors.Is(err, ErrMissingImage) {
			t.Fatalf("expected ErrMissingImage, got %v", err)
		}
	})

	t.Run("valid analysis produces a priced quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		vision := mock_interfaces.NewMockIVisionClient(ctrl)
		uc := NewSnapQuoteUseCase(repo, vision)

		vision.EXPECT().AnalyzeImages(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{
			"valid": true,
			"serviceType": "gutter_cleaning",
			"scopeDescription": "Clogged gutters on a 2-story home",
			"estimatedHours": 2,
			"confidence": "high",
			"details": {"storyCount": 2, "linearFeet": 180}
		}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.Status != entities.QuoteStatusQuoted {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.ServiceType != entities.ServiceGutterCleaning || q.Confidence != entities.ConfidenceHigh {
					t.Fatalf("unexpected analysis mapping: %+v", q)
				}
				if q.BaseEstimate != 259 || q.CeilingPrice != 298 {
					t.Fatalf("unexpected pricing: base=%d ceiling=%d", q.BaseEstimate, q.CeilingPrice)
				}
				if q.CustomerID != "cust-1" {
					t.Fatalf("expected customer id, got %q", q.CustomerID)
				}
				return q, nil
			},
		)

		res, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{
			CustomerID: "cust-1",
			ImageRefs:  []string{"data:image/jpeg;base64,abc"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rejection != nil {
			t.Fatalf("unexpected rejection: %+v", res.Rejection)
		}
		if res.FallbackMessage != "" {
			t.Fatalf("unexpected fallback message for high confidence: %q", res.FallbackMessage)
		}
		if !strings.Contains(res.BookingURL, res.Quote.ID) {
			t.Fatalf("booking url %q does not reference quote", res.BookingURL)
		}
	})

	t.Run("vehicle photo is a typed rejection without a price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		vision := mock_interfaces.NewMockIVisionClient(ctrl)
		uc := NewSnapQuoteUseCase(repo, vision)

		vision.EXPECT().AnalyzeImages(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"valid": false, "reason": "vehicle_service"}`), nil)

		res, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{ImageRefs: []string{"img"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rejection == nil || res.Rejection.Reason != RejectionVehicleService {
			t.Fatalf("expected vehicle rejection, got %+v", res.Rejection)
		}
		if res.Quote.ID != "" || res.Quote.CeilingPrice != 0 {
			t.Fatalf("rejection must not carry a quote: %+v", res.Quote)
		}
	})

	t.Run("non home photo is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		vision := mock_interfaces.NewMockIVisionClient(ctrl)
		uc := NewSnapQuoteUseCase(repo, vision)

		vision.EXPECT().AnalyzeImages(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"valid": false, "reason": "a photo of a cat"}`), nil)

		res, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{ImageRefs: []string{"img"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rejection == nil || res.Rejection.Reason != RejectionNotHomeRelated {
			t.Fatalf("expected not-home rejection, got %+v", res.Rejection)
		}
	})

	t.Run("vision error degrades instead of failing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		vision := mock_interfaces.NewMockIVisionClient(ctrl)
		uc := NewSnapQuoteUseCase(repo, vision)

		vision.EXPECT().AnalyzeImages(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ServiceType != entities.ServiceHandyman || q.Confidence != entities.ConfidenceLow {
					t.Fatalf("expected degraded handyman analysis, got %+v", q)
				}
				if q.BaseEstimate != 75 {
					t.Fatalf("expected one hour handyman base, got %d", q.BaseEstimate)
				}
				return q, nil
			},
		)

		res, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{ImageRefs: []string{"img"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FallbackMessage == "" {
			t.Fatal("expected fallback message on degraded analysis")
		}
	})

	t.Run("mock vision payload degrades", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		vision := mock_interfaces.NewMockIVisionClient(ctrl)
		uc := NewSnapQuoteUseCase(repo, vision)

		vision.EXPECT().AnalyzeImages(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"_mock": true, "analysis": "no key"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ServiceType != entities.ServiceHandyman {
					t.Fatalf("expected handyman fallback, got %s", q.ServiceType)
				}
				return q, nil
			},
		)

		if _, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{ImageRefs: []string{"img"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("prose reply degrades instead of pricing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		vision := mock_interfaces.NewMockIVisionClient(ctrl)
		uc := NewSnapQuoteUseCase(repo, vision)

		vision.EXPECT().AnalyzeImages(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"_degraded": true, "analysis": "I can see what appears to be a broken fence panel"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ServiceType != entities.ServiceHandyman || q.Confidence != entities.ConfidenceLow {
					t.Fatalf("expected degraded handyman analysis, got %+v", q)
				}
				if q.BaseEstimate != 75 {
					t.Fatalf("expected one hour handyman base, got %d", q.BaseEstimate)
				}
				return q, nil
			},
		)

		res, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{ImageRefs: []string{"img"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FallbackMessage == "" {
			t.Fatal("expected fallback message on degraded analysis")
		}
	})

	t.Run("reply without service classification degrades", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		vision := mock_interfaces.NewMockIVisionClient(ctrl)
		uc := NewSnapQuoteUseCase(repo, vision)

		vision.EXPECT().AnalyzeImages(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"analysis": "There is some damage visible in the photo"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ServiceType != entities.ServiceHandyman {
					t.Fatalf("expected handyman fallback, got %s", q.ServiceType)
				}
				if q.ServiceType == entities.ServiceHomeConsultation || q.CeilingPrice == 0 {
					t.Fatalf("malformed reply must not produce a free quote, got %+v", q)
				}
				return q, nil
			},
		)

		if _, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{ImageRefs: []string{"img"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown service type downgrades to consultation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		vision := mock_interfaces.NewMockIVisionClient(ctrl)
		uc := NewSnapQuoteUseCase(repo, vision)

		vision.EXPECT().AnalyzeImages(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{
			"valid": true,
			"serviceType": "roof_replacement",
			"scopeDescription": "Damaged shingles",
			"estimatedHours": 3,
			"confidence": "high",
			"details": {}
		}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ServiceType != entities.ServiceHomeConsultation || q.Confidence != entities.ConfidenceLow {
					t.Fatalf("expected consultation downgrade, got %+v", q)
				}
				if q.CeilingPrice != 0 {
					t.Fatalf("consultation must be free, got %d", q.CeilingPrice)
				}
				return q, nil
			},
		)

		if _, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{ImageRefs: []string{"img"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("persistence failure is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		vision := mock_interfaces.NewMockIVisionClient(ctrl)
		uc := NewSnapQuoteUseCase(repo, vision)

		vision.EXPECT().AnalyzeImages(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{
			"valid": true, "serviceType": "junk_removal", "scopeDescription": "pile", "estimatedHours": 1,
			"confidence": "medium", "details": {}
		}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db down"))

		_, err := uc.CreateQuote(context.Background(), CreateQuoteCommand{ImageRefs: []string{"img"}})
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSnapQuoteUseCase_GetQuote(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewSnapQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetQuote(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewSnapQuoteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		q, err := uc.GetQuote(context.Background(), " q-1 ")
		if err != nil || q.ID != "q-1" {
			t.Fatalf("unexpected result: %+v err=%v", q, err)
		}
	})
}
