package sos

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"rescueHub/internal/domain"
	"rescueHub/internal/middleware"
	"rescueHub/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CaseDispatch interface {
	SendSignal(ctx context.Context, userID int64, req domain.SendSignalRequest) (*domain.SendSignalResponse, error)
	Accept(ctx context.Context, teamID, caseID int64) (*domain.Case, error)
	Reject(ctx context.Context, teamID, caseID int64) (*domain.Case, error)
	ChangeStatus(ctx context.Context, teamID int64, req domain.ChangeStatusRequest) (*domain.Case, error)
	Cancel(ctx context.Context, teamID int64, req domain.CancelCaseRequest) (*domain.Case, error)
	Complete(ctx context.Context, teamID int64, req domain.CompleteCaseRequest) (*domain.Case, error)
	MarkSafe(ctx context.Context, userID, caseID int64) (*domain.Case, error)
}

type LocationAsker interface {
	AskLocation(ctx context.Context, fromID int64, req domain.AskLocationRequest) (*domain.AskLocationResponse, error)
}

type Handler struct {
	logger   *slog.Logger
	Dispatch CaseDispatch
	Location LocationAsker
}

func NewHandler(logger *slog.Logger, dispatch CaseDispatch, location LocationAsker) *Handler {
	return &Handler{
		logger:   logger,
		Dispatch: dispatch,
		Location: location,
	}
}

func (h *Handler) SendSignal(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.SendSignalRequest
	if !h.bind(w, r, &req) {
		return
	}

	actorID := middleware.ActorFromContext(r.Context())

	l.Info("signal received",
		slog.Int64("user_id", actorID),
		slog.Float64("lat", req.Latitude),
		slog.Float64("lng", req.Longitude),
	)

	resp, err := h.Dispatch.SendSignal(r.Context(), actorID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("signal dispatched",
		slog.Int64("case_id", resp.CaseID),
		slog.Int("teams", len(resp.NotifiedTeamIDs)),
	)
	h.writeData(w, http.StatusOK, resp)
}

func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	var req domain.CaseActionRequest
	if !h.bind(w, r, &req) {
		return
	}

	cs, err := h.Dispatch.Accept(r.Context(), middleware.ActorFromContext(r.Context()), req.CaseID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, cs)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	var req domain.CaseActionRequest
	if !h.bind(w, r, &req) {
		return
	}

	cs, err := h.Dispatch.Reject(r.Context(), middleware.ActorFromContext(r.Context()), req.CaseID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, cs)
}

func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.ChangeStatusRequest
	if !h.bind(w, r, &req) {
		return
	}

	cs, err := h.Dispatch.ChangeStatus(r.Context(), middleware.ActorFromContext(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, cs)
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req domain.CancelCaseRequest
	if !h.bind(w, r, &req) {
		return
	}

	cs, err := h.Dispatch.Cancel(r.Context(), middleware.ActorFromContext(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, cs)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	var req domain.CompleteCaseRequest
	if !h.bind(w, r, &req) {
		return
	}

	cs, err := h.Dispatch.Complete(r.Context(), middleware.ActorFromContext(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, cs)
}

func (h *Handler) MarkSafe(w http.ResponseWriter, r *http.Request) {
	var req domain.CaseActionRequest
	if !h.bind(w, r, &req) {
		return
	}

	cs, err := h.Dispatch.MarkSafe(r.Context(), middleware.ActorFromContext(r.Context()), req.CaseID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, cs)
}

func (h *Handler) AskLocation(w http.ResponseWriter, r *http.Request) {
	var req domain.AskLocationRequest
	if !h.bind(w, r, &req) {
		return
	}

	resp, err := h.Location.AskLocation(r.Context(), middleware.ActorFromContext(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, resp)
}

// bind decodes and validates the body; a false return means the response
// has already been written.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		h.log(r).Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	if err := validator.ValidateStruct(target); err != nil {
		h.log(r).Warn("validation failed", slog.String("error", err.Error()))
		h.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
