package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/finflow/internal/models"
	"github.com/ternarybob/finflow/internal/services/ask"
)

// mockAskService implements interfaces.AskService for testing
type mockAskService struct {
	askFunc func(ctx context.Context, question string) (string, error)
}

func (m *mockAskService) Ask(ctx context.Context, question string) (string, error) {
	if m.askFunc != nil {
		return m.askFunc(ctx, question)
	}
	return "", nil
}

func postAsk(handler *AskHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.AskHandler(w, req)
	return w
}

func TestAskHandler_Success(t *testing.T) {
	svc := &mockAskService{
		askFunc: func(ctx context.Context, question string) (string, error) {
			if question != "What moved markets?" {
				t.Errorf("unexpected question %q", question)
			}
			return "Rates held steady.", nil
		},
	}
	handler := NewAskHandler(svc, arbor.NewLogger())

	w := postAsk(handler, `{"question":"What moved markets?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var envelope models.AskEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Status != models.StatusSuccess {
		t.Errorf("expected status success, got %q", envelope.Status)
	}
	if envelope.Answer != "Rates held steady." {
		t.Errorf("unexpected answer %q", envelope.Answer)
	}
}

func TestAskHandler_EmptyQuestion(t *testing.T) {
	handler := NewAskHandler(&mockAskService{}, arbor.NewLogger())

	for _, body := range []string{`{"question":""}`, `{"question":"   "}`, `{}`} {
		w := postAsk(handler, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestAskHandler_InvalidBody(t *testing.T) {
	handler := NewAskHandler(&mockAskService{}, arbor.NewLogger())

	w := postAsk(handler, `not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAskHandler_AIUnavailable(t *testing.T) {
	svc := &mockAskService{
		askFunc: func(ctx context.Context, question string) (string, error) {
			return "", ask.ErrUnavailable
		},
	}
	handler := NewAskHandler(svc, arbor.NewLogger())

	w := postAsk(handler, `{"question":"anything"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	var envelope models.AskEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Status != models.StatusError {
		t.Errorf("expected status error, got %q", envelope.Status)
	}
}

func TestAskHandler_RejectsGet(t *testing.T) {
	handler := NewAskHandler(&mockAskService{}, arbor.NewLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/ask", nil)
	w := httptest.NewRecorder()
	handler.AskHandler(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
