package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pwallin/corpgraph/graph"
	"github.com/pwallin/corpgraph/internal/config"
	"github.com/pwallin/corpgraph/internal/db"
	"github.com/pwallin/corpgraph/internal/export"
	"github.com/pwallin/corpgraph/internal/graphql"
	"github.com/pwallin/corpgraph/internal/ingestion"
	"github.com/pwallin/corpgraph/internal/ledger"
	"github.com/pwallin/corpgraph/internal/middleware"
	"github.com/pwallin/corpgraph/internal/projection"
	"github.com/pwallin/corpgraph/internal/repository/postgres"
	"github.com/pwallin/corpgraph/internal/scenario"
	"github.com/pwallin/corpgraph/internal/temporal"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/rs/cors"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbConfig, err := config.LoadDBConfig(".")
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}
	serverConfig, err := config.LoadServerConfig(".")
	if err != nil {
		log.Fatalf("Failed to load server config: %v", err)
	}

	conn, err := db.NewConnection(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	if err := db.RunMigrations(dbConfig, serverConfig.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repos := postgres.New(conn.Pool)

	ledgerService := ledger.NewService(repos.ChangeLog())
	store := temporal.NewStore(repos.EntityVersions(), ledgerService)
	scenarios := scenario.NewManager(repos.Workspaces(), store, repos.OwnershipEdges())
	projector := projection.NewProjector(store, repos.OwnershipEdges(), scenarios)
	exportService := export.NewService(projector)
	ingestionService := ingestion.NewService(store, repos.OwnershipEdges(), repos.Transactions())

	resolver := graphql.NewResolver(
		repos.Organizations(),
		store,
		repos.OwnershipEdges(),
		projector,
		scenarios,
		ledgerService,
		repos.Filings(),
		repos.Transactions(),
	)

	srv := handler.NewDefaultServer(graph.NewExecutableSchema(graph.Config{Resolvers: resolver}))
	srv.Use(&middleware.ResolverLoggerExtension{})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   serverConfig.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	graphqlHandler := middleware.LoggingMiddleware(
		middleware.ActorMiddleware(
			middleware.DataLoaderMiddleware(store)(srv),
		),
	)

	http.Handle("/query", corsHandler.Handler(graphqlHandler))
	http.Handle("/export/graph", corsHandler.Handler(middleware.LoggingMiddleware(export.NewHTTPHandler(exportService))))
	http.Handle("/ingest", corsHandler.Handler(middleware.LoggingMiddleware(middleware.ActorMiddleware(ingestion.NewHTTPHandler(ingestionService)))))
	http.Handle("/", corsHandler.Handler(middleware.LoggingMiddleware(playground.Handler("GraphQL playground", "/query"))))

	server := &http.Server{
		Addr:         serverConfig.Addr,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting GraphQL server on %s", serverConfig.Addr)
		log.Printf("GraphQL playground available at http://localhost%s", serverConfig.Addr)
		log.Printf("GraphQL endpoint available at http://localhost%s/query", serverConfig.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
