package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"docreview/internal/domain"
	"docreview/internal/ports"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorName = "X-Actor-Name"
)

type actorKey struct{}

// HeaderIdentity resolves the actor placed on the request context by
// withActor. Requests without actor headers carry no actor.
type HeaderIdentity struct{}

var _ ports.Identity = HeaderIdentity{}

func (HeaderIdentity) CurrentActor(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(domain.Actor)
	return a, ok
}

func withActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(headerActorID))
		name := strings.TrimSpace(r.Header.Get(headerActorName))
		if id == "" && name == "" {
			next.ServeHTTP(w, r)
			return
		}
		if id == "" {
			id = name
		}
		ctx := context.WithValue(r.Context(), actorKey{}, domain.Actor{ID: id, Name: name})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
