package middleware

import (
	"context"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// actorCtxKey is the key used to store the authenticated employee in the request context.
const actorCtxKey = contextKey("actor")

// WithActor returns a copy of ctx carrying the authenticated employee.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

// GetActorFromContext retrieves the authenticated employee from the Gin request context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actor, ok := c.Request.Context().Value(actorCtxKey).(domain.Actor)
	if !ok || actor.ID == "" {
		return domain.Actor{}, false
	}
	return actor, true
}
