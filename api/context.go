package api

import (
	"context"

	"github.com/techconnect/site-backend/auth"
)

type keyType string

const actorKey keyType = "actor"

// ctxWithActor adds the authenticated actor to the context
func ctxWithActor(ctx context.Context, actor auth.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// actorFromContext retrieves the authenticated actor, or nil if the request
// was not authenticated. Handlers hand the result straight to the catalog
// service, which treats nil as a hard precondition failure.
func actorFromContext(ctx context.Context) *auth.Actor {
	value := ctx.Value(actorKey)
	if value == nil {
		return nil
	}
	actor, ok := value.(auth.Actor)
	if !ok {
		return nil
	}
	return &actor
}
