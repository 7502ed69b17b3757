package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/financialpeak/goalcoach/internal/adapters/inbound/http"
	"github.com/financialpeak/goalcoach/internal/adapters/outbound/config"
	"github.com/financialpeak/goalcoach/internal/adapters/outbound/log"
	"github.com/financialpeak/goalcoach/internal/adapters/outbound/modelrunner"
	"github.com/financialpeak/goalcoach/internal/telemetry"
	"github.com/financialpeak/goalcoach/internal/usecases"
)

// NewGoalCoachApp creates and returns a new instance of the Goal Coach
// application. Initializer order matters: the model client must exist before
// the goal validator trains, and training runs to completion before the HTTP
// server starts serving requests.
func NewGoalCoachApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&modelrunner.InitLLMClient{},

			&usecases.InitValidateGoal{},
			&usecases.InitAnalyzeSpending{},
			&usecases.InitGenerateTasks{},
		).
		Host(
			&http.GoalCoachServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
