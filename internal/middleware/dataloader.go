package middleware

import (
	"context"
	"net/http"

	"github.com/pwallin/corpgraph/internal/entityloader"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/graph-gophers/dataloader"
)

type ctxKey string

const entityLoaderKey ctxKey = "entityLoader"

// DataLoaderMiddleware attaches a per-request entity loader to the context.
// Resolvers that hydrate entity references batch their reads through it.
func DataLoaderMiddleware(store *temporal.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loader := entityloader.NewEntityLoader(store)
			ctx := ContextWithEntityLoader(r.Context(), loader.Loader)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithEntityLoader attaches an entity loader to a context.
func ContextWithEntityLoader(ctx context.Context, loader *dataloader.Loader) context.Context {
	return context.WithValue(ctx, entityLoaderKey, loader)
}

// EntityLoaderFromContext retrieves the dataloader from context
func EntityLoaderFromContext(ctx context.Context) *dataloader.Loader {
	if l, ok := ctx.Value(entityLoaderKey).(*dataloader.Loader); ok {
		return l
	}
	return nil
}
