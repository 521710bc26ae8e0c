package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/models"
	"github.com/ternarybob/finflow/internal/services/brief"
)

// mockBriefService implements interfaces.BriefService for testing
type mockBriefService struct {
	generateFunc func(ctx context.Context, assets []string) (*models.DailyBrief, error)
}

func (m *mockBriefService) Generate(ctx context.Context, assets []string) (*models.DailyBrief, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, assets)
	}
	return &models.DailyBrief{}, nil
}

func getBrief(handler *BriefHandler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	handler.DailyBriefHandler(w, req)
	return w
}

func TestBriefHandler_Success(t *testing.T) {
	svc := &mockBriefService{
		generateFunc: func(ctx context.Context, assets []string) (*models.DailyBrief, error) {
			return &models.DailyBrief{
				Date:           "September 1, 2026",
				MarketOverview: "Markets rallied on rate cut hopes.",
				KeyThemes:      []string{"Rates"},
				TomorrowWatch:  []string{"Jobs report"},
			}, nil
		},
	}
	handler := NewBriefHandler(svc, arbor.NewLogger())

	w := getBrief(handler, "/api/daily-brief")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var envelope models.BriefEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Status != models.StatusSuccess {
		t.Errorf("expected status success, got %q", envelope.Status)
	}
	if envelope.Data == nil || envelope.Data.MarketOverview != "Markets rallied on rate cut hopes." {
		t.Errorf("unexpected data %+v", envelope.Data)
	}
}

func TestBriefHandler_AssetsParam(t *testing.T) {
	var got []string
	svc := &mockBriefService{
		generateFunc: func(ctx context.Context, assets []string) (*models.DailyBrief, error) {
			got = assets
			return &models.DailyBrief{MarketOverview: "Quiet."}, nil
		},
	}
	handler := NewBriefHandler(svc, arbor.NewLogger())

	getBrief(handler, "/api/daily-brief?assets=tesla,%20bitcoin,,")

	want := []string{"tesla", "bitcoin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected assets %v, got %v", want, got)
	}
}

func TestBriefHandler_NoAssetsParam(t *testing.T) {
	var got []string
	called := false
	svc := &mockBriefService{
		generateFunc: func(ctx context.Context, assets []string) (*models.DailyBrief, error) {
			got = assets
			called = true
			return &models.DailyBrief{MarketOverview: "Quiet."}, nil
		},
	}
	handler := NewBriefHandler(svc, arbor.NewLogger())

	getBrief(handler, "/api/daily-brief")

	if !called {
		t.Fatal("service was not called")
	}
	if len(got) != 0 {
		t.Errorf("expected no assets, got %v", got)
	}
}

func TestBriefHandler_AIUnavailable(t *testing.T) {
	svc := &mockBriefService{
		generateFunc: func(ctx context.Context, assets []string) (*models.DailyBrief, error) {
			return nil, brief.ErrUnavailable
		},
	}
	handler := NewBriefHandler(svc, arbor.NewLogger())

	w := getBrief(handler, "/api/daily-brief")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	var envelope models.BriefEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Status != models.StatusError {
		t.Errorf("expected status error, got %q", envelope.Status)
	}
}

func TestBriefHandler_GenerateFailure(t *testing.T) {
	svc := &mockBriefService{
		generateFunc: func(ctx context.Context, assets []string) (*models.DailyBrief, error) {
			return nil, errors.New("model timeout")
		},
	}
	handler := NewBriefHandler(svc, arbor.NewLogger())

	w := getBrief(handler, "/api/daily-brief")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestBriefHandler_RejectsPost(t *testing.T) {
	handler := NewBriefHandler(&mockBriefService{}, arbor.NewLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/daily-brief", nil)
	w := httptest.NewRecorder()
	handler.DailyBriefHandler(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
