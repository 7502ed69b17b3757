package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/financialpeak/goalcoach/internal/telemetry"
	"github.com/financialpeak/goalcoach/internal/usecases"
	"github.com/rs/cors"
)

// GoalCoachServer is the REST API server for the Goal Coach application.
type GoalCoachServer struct {
	Port                   int                      `config:"HTTP_PORT" default:"8080"`
	Logger                 *log.Logger              `resolve:""`
	ValidateGoalUseCase    usecases.ValidateGoal    `resolve:""`
	AnalyzeSpendingUseCase usecases.AnalyzeSpending `resolve:""`
	GenerateTasksUseCase   usecases.GenerateTasks   `resolve:""`
}

// Run starts the HTTP server for the GoalCoachServer.
func (api GoalCoachServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/validate-goal", api.ValidateGoal)
	mux.HandleFunc("POST /api/v1/generate-tasks", api.GenerateTasks)
	mux.HandleFunc("GET /api/v1/health", api.Health)
	mux.HandleFunc("/introspect", IntrospectHandler)

	var h http.Handler = telemetry.HttpHandler(mux, "goalcoach-api")

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("GoalCoachServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("GoalCoachServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("GoalCoachServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the GoalCoachServer is ready by performing a health check.
func (api GoalCoachServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/api/v1/health", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
