package sos

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"rescueHub/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, e.ErrConflict):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, e.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, e.ErrUnauthorized):
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, e.ErrForbidden):
		h.writeError(w, http.StatusForbidden, "forbidden")
	default:
		// dependency failures stay masked, details live in the log
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) writeData(w http.ResponseWriter, code int, data any) {
	h.writeJSON(w, code, envelope{Status: "success", Data: data})
}

func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, envelope{Status: "error", Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}
