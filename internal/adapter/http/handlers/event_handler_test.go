package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wondershop/internal/adapter/http/handlers/mocks"
	"wondershop/internal/domain/entities"
	"wondershop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func postEvent(h *EventHandler, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/v1/events", h.HandleEvent)

	req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEventHandler_HandleEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	roster := NewOperatorRoster([]string{"op-1"})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEventHandler(mocks.NewMockIDialogueUseCase(ctrl), roster)

		w := postEvent(h, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEventHandler(mocks.NewMockIDialogueUseCase(ctrl), roster)

		w := postEvent(h, `{"user_id":"  ","type":"text","text":"hi"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown button token never reaches the dialogue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEventHandler(mocks.NewMockIDialogueUseCase(ctrl), roster)

		w := postEvent(h, `{"user_id":"42","type":"button","action":"self_destruct"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "UNKNOWN_ACTION" {
			t.Fatalf("expected UNKNOWN_ACTION, got %v", body)
		}
	})

	t.Run("operator flag comes from the roster", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDialogueUseCase(ctrl)
		h := NewEventHandler(uc, roster)

		uc.EXPECT().Handle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev entities.Event) usecase.Reply {
			if !ev.Privileged {
				t.Fatalf("expected operator event to be privileged")
			}
			if _, ok := ev.Action.(entities.AddProduct); !ok {
				t.Fatalf("unexpected action: %#v", ev.Action)
			}
			return usecase.Reply{
				Outcome: usecase.OutcomePrompt,
				Phase:   entities.PhaseName,
				Intents: []entities.Intent{entities.SendText("op-1", "name?")},
			}
		})

		w := postEvent(h, `{"user_id":"op-1","type":"button","action":"add_product"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Outcome string            `json:"outcome"`
			Phase   string            `json:"phase"`
			Intents []entities.Intent `json:"intents"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Outcome != "prompt" || body.Phase != string(entities.PhaseName) || len(body.Intents) != 1 {
			t.Fatalf("unexpected response: %+v", body)
		}
	})

	t.Run("refusal is reported in the body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDialogueUseCase(ctrl)
		h := NewEventHandler(uc, roster)

		uc.EXPECT().Handle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev entities.Event) usecase.Reply {
			if ev.Privileged {
				t.Fatalf("expected buyer event to be unprivileged")
			}
			return usecase.Reply{Outcome: usecase.OutcomeRefused, Phase: entities.PhaseSelectingAction, Err: usecase.ErrUnauthorized}
		})

		w := postEvent(h, `{"user_id":"42","type":"button","action":"add_product"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "unauthorized" {
			t.Fatalf("expected unauthorized, got %v", body["error"])
		}
	})
}
