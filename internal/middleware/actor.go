package middleware

import (
	"context"
	"net/http"
	"strconv"

	"rescueHub/pkg/e"
)

type ctxKey int

const actorKey ctxKey = iota

// ActorID pulls the caller identity from the X-Actor-ID header and puts
// it on the request context. Requests without a usable id are rejected;
// verifying the identity itself is the job of the auth layer in front of
// this service.
func ActorID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-Actor-ID")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, e.ErrInvalidActorID.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, id)))
	})
}

// ActorFromContext returns the id set by ActorID, or 0 when absent.
func ActorFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(actorKey).(int64)
	return id
}
