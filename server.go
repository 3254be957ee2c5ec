package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/ironstar-io/chizerolog"
	"github.com/rs/zerolog"

	apiProducts "github.com/Eyal-donut/products-scanner-server/api/products"
	apiUsers "github.com/Eyal-donut/products-scanner-server/api/users"
	"github.com/Eyal-donut/products-scanner-server/db/mongo"
)

// APIServer is a struct that bundles together the various server-wide
// resources used at runtime that each have
// a lifecycle of initialization, connection, and disconnection
type APIServer struct {
	logger     zerolog.Logger
	dbProvider *mongo.Provider
}

// NewAPIServer initializes the struct and all constituent components
func NewAPIServer(logger zerolog.Logger) (*APIServer, error) {
	// Initialize the MongoDB handler
	dbProvider, err := mongo.NewProvider()
	if err != nil {
		return nil, err
	}

	return &APIServer{
		logger:     logger,
		dbProvider: dbProvider,
	}, nil
}

// Connect connects to the database and prepares its indexes
func (a *APIServer) Connect(ctx context.Context) error {
	a.logger.Info().Msg("initializing MongoDB database provider")
	err := a.dbProvider.Connect(ctx)
	if err != nil {
		a.logger.Error().Err(err).Msg("could not connect to the database")
		return err
	}
	a.logger.Info().Msg("successfully connected to and pinged the database")

	return nil
}

// Disconnect tears down the database connection
func (a *APIServer) Disconnect(ctx context.Context) error {
	err := a.dbProvider.Disconnect(ctx)
	if err != nil {
		a.logger.Error().Err(err).Msg("could not disconnect from the database")
		return err
	}
	a.logger.Info().Msg("disconnected from the database")

	return nil
}

// Serve runs the main API server until it's cancelled for some reason,
// in which case it attempts to gracefully shutdown.
// This function blocks.
func (a *APIServer) Serve(ctx context.Context, port int) {
	router := a.routes()
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Fatal().Err(err).Msg("listen failed")
		}
	}()
	a.logger.Info().Int("port", port).Msg("API server started")

	<-ctx.Done()
	a.logger.Info().Msg("API server stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer func() {
		cancel()
	}()

	if err := server.Shutdown(ctx); err != nil {
		a.logger.Fatal().Err(err).Msg("API server shutdown failed")
	}
	a.logger.Info().Msg("API server exited properly")
}

func (a *APIServer) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,                          // Recover from panics without crashing the server
		chizerolog.LoggerMiddleware(&a.logger),        // Log API request calls through zerolog
		middleware.RedirectSlashes,                    // Redirect slashes to no slash URL versions
		render.SetContentType(render.ContentTypeJSON), // Set content-type headers to application/json
		middleware.Compress(5),                        // Compress results, mostly gzipping assets and json
		middleware.NoCache,                            // Prevent clients from caching the results
		a.corsMiddleware(),                            // Create cors middleware from go-chi/cors
	)

	// ==============================
	// Add all routes to the API here
	// ==============================
	router.Route("/v1", func(r chi.Router) {
		// Can be used for health checks
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(204)
		})

		r.Mount("/products", apiProducts.Routes(a.dbProvider))
		r.Mount("/users", apiUsers.Routes(a.dbProvider))
	})

	return router
}

func (a *APIServer) corsMiddleware() func(http.Handler) http.Handler {
	// See if the CORS_ALLOWED_ORIGINS environment variable was set
	allowedOrigins := "*"
	if value, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		allowedOrigins = value
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
