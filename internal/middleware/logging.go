package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql"
)

// statusRecorder captures the status code written to the response so the
// access log can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// ResolverLoggerExtension times every graph resolver. Projections over large
// ownership graphs show up here first when they regress.
type ResolverLoggerExtension struct{}

// ExtensionName implements graphql.HandlerExtension.
func (r *ResolverLoggerExtension) ExtensionName() string {
	return "ResolverLogger"
}

// Validate implements graphql.HandlerExtension.
func (r *ResolverLoggerExtension) Validate(schema graphql.ExecutableSchema) error {
	return nil
}

// InterceptField logs one line per resolved field with its duration.
func (r *ResolverLoggerExtension) InterceptField(ctx context.Context, next graphql.Resolver) (res interface{}, err error) {
	start := time.Now()
	res, err = next(ctx)
	fc := graphql.GetFieldContext(ctx)
	if err != nil {
		log.Printf("graphql field=%s.%s duration=%s err=%v", fc.Object, fc.Field.Name, time.Since(start), err)
	} else {
		log.Printf("graphql field=%s.%s duration=%s", fc.Object, fc.Field.Name, time.Since(start))
	}
	return res, err
}

// LoggingMiddleware writes one access-log line per request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf("http %s %s status=%d duration=%s actor=%q remote=%s",
			r.Method, r.URL.Path, rec.status, time.Since(start), r.Header.Get(ActorHeader), r.RemoteAddr)
	})
}
