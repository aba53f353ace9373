package sos_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"rescueHub/internal/api/handlers/http/sos"
	"rescueHub/internal/domain"
	"rescueHub/internal/middleware"
	"rescueHub/pkg/e"

	mock_sos "rescueHub/internal/api/handlers/http/sos/mocks"
)

func newHandler(t *testing.T) (*sos.Handler, *mock_sos.MockCaseDispatch, *mock_sos.MockLocationAsker) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	dispatch := mock_sos.NewMockCaseDispatch(ctrl)
	location := mock_sos.NewMockLocationAsker(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sos.NewHandler(logger, dispatch, location), dispatch, location
}

func do(h http.HandlerFunc, actorID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if actorID != "" {
		req.Header.Set("X-Actor-ID", actorID)
	}
	rr := httptest.NewRecorder()
	middleware.ActorID(h).ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v (%s)", err, rr.Body.String())
	}
	return env
}

func TestSendSignal_OK(t *testing.T) {
	t.Parallel()

	h, dispatch, _ := newHandler(t)

	dispatch.EXPECT().
		SendSignal(gomock.Any(), int64(1), domain.SendSignalRequest{Latitude: 21.02, Longitude: 105.83}).
		Return(&domain.SendSignalResponse{CaseID: 10, SignalID: 100, NotifiedTeamIDs: []int64{5}}, nil)

	rr := do(h.SendSignal, "1", `{"latitude":21.02,"longitude":105.83}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rr.Code, rr.Body.String())
	}
	env := decode(t, rr)
	if env.Status != "success" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	var resp domain.SendSignalResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("bad data: %v", err)
	}
	if resp.CaseID != 10 || resp.SignalID != 100 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSendSignal_ValidationRejectsBeforeService(t *testing.T) {
	t.Parallel()

	h, _, _ := newHandler(t)

	rr := do(h.SendSignal, "1", `{"latitude":123.0,"longitude":10.0}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rr.Code)
	}
	if env := decode(t, rr); env.Status != "error" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestSendSignal_MissingActorHeader(t *testing.T) {
	t.Parallel()

	h, _, _ := newHandler(t)

	rr := do(h.SendSignal, "", `{"latitude":21.0,"longitude":105.0}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rr.Code)
	}
}

func TestAccept_ConflictMapsTo400(t *testing.T) {
	t.Parallel()

	h, dispatch, _ := newHandler(t)

	dispatch.EXPECT().
		Accept(gomock.Any(), int64(5), int64(10)).
		Return(nil, e.Wrap("service.dispatch.Accept", e.ErrConflict))

	rr := do(h.Accept, "5", `{"case_id":10}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rr.Code)
	}
}

func TestMarkSafe_ForbiddenMapsTo403(t *testing.T) {
	t.Parallel()

	h, dispatch, _ := newHandler(t)

	dispatch.EXPECT().
		MarkSafe(gomock.Any(), int64(2), int64(10)).
		Return(nil, e.Wrap("service.dispatch.MarkSafe", e.ErrForbidden))

	rr := do(h.MarkSafe, "2", `{"case_id":10}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d", rr.Code)
	}
}

func TestCancel_ReasonRequired(t *testing.T) {
	t.Parallel()

	h, _, _ := newHandler(t)

	rr := do(h.Cancel, "5", `{"case_id":10}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rr.Code)
	}
}

func TestDependencyFailureIsMasked(t *testing.T) {
	t.Parallel()

	h, dispatch, _ := newHandler(t)

	dispatch.EXPECT().
		Accept(gomock.Any(), int64(5), int64(10)).
		Return(nil, e.Wrap("service.dispatch.Accept", e.ErrInternal))

	rr := do(h.Accept, "5", `{"case_id":10}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", rr.Code)
	}
	env := decode(t, rr)
	if env.Error != "internal error" {
		t.Fatalf("internal details leaked: %q", env.Error)
	}
}

func TestAskLocation_FreshHit(t *testing.T) {
	t.Parallel()

	h, _, location := newHandler(t)

	location.EXPECT().
		AskLocation(gomock.Any(), int64(1), domain.AskLocationRequest{ToID: 2}).
		Return(&domain.AskLocationResponse{Location: &domain.CachedLocation{ActorID: 2}}, nil)

	rr := do(h.AskLocation, "1", `{"to_id":2}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rr.Code, rr.Body.String())
	}
}
