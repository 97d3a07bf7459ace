package model

import (
	"context"
)

// ContextManager stores and retrieves the authenticated principal in request contexts.
type ContextManager interface {
	SetPrincipalToContext(ctx context.Context, principal Principal) context.Context
	GetPrincipalFromContext(ctx context.Context) (Principal, bool)
}
