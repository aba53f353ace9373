package coordinator

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"rescueHub/internal/domain"
	"rescueHub/internal/middleware"
	"rescueHub/pkg/validator"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CaseBoard interface {
	AssignTeam(ctx context.Context, coordinatorID int64, req domain.AssignTeamRequest) (*domain.Case, error)
	GetCase(ctx context.Context, caseID int64) (*domain.Case, error)
	ListSignals(ctx context.Context, caseID int64) ([]*domain.Signal, error)
	Stats(ctx context.Context) (*domain.CaseStats, error)
}

type TeamLister interface {
	List(ctx context.Context) ([]*domain.Team, error)
}

type Handler struct {
	logger *slog.Logger
	Board  CaseBoard
	Teams  TeamLister
}

func NewHandler(logger *slog.Logger, board CaseBoard, teams TeamLister) *Handler {
	return &Handler{
		logger: logger,
		Board:  board,
		Teams:  teams,
	}
}

func (h *Handler) AssignTeam(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.AssignTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	coordinatorID := middleware.ActorFromContext(r.Context())

	cs, err := h.Board.AssignTeam(r.Context(), coordinatorID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("team assigned",
		slog.Int64("case_id", req.CaseID),
		slog.Int64("team_id", req.TeamID),
		slog.Int64("coordinator_id", coordinatorID),
	)
	h.writeData(w, http.StatusOK, cs)
}

func (h *Handler) GetCase(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		l.Warn("invalid id", slog.String("id", idStr))
		h.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	cs, err := h.Board.GetCase(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	signals, err := h.Board.ListSignals(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, map[string]any{
		"case":    cs,
		"signals": signals,
	})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Teams.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, map[string]any{"teams": teams})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Board.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, stats)
}
