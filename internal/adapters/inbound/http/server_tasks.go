package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/financialpeak/goalcoach/internal/domain"
)

// GenerateTasks handles POST /api/v1/generate-tasks. The transaction history
// is analyzed first, then the goal plus the resulting profile drive task
// generation.
func (api GoalCoachServer) GenerateTasks(w http.ResponseWriter, r *http.Request) {
	var req TaskGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	if req.ValidatedGoal == "" {
		respondError(w, badRequest("validated_goal is required"))
		return
	}

	transactions, err := toTransactions(req.Transactions)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	profile := api.AnalyzeSpendingUseCase.Execute(r.Context(), transactions)

	result, err := api.GenerateTasksUseCase.Execute(r.Context(), req.ValidatedGoal, profile)
	if err != nil {
		api.Logger.Printf("Error generating tasks: %v", err)
		respondError(w, toError(err))
		return
	}

	// A malformed model reply is a service-side defect: the structured
	// result still goes to the caller, under an error status.
	status := http.StatusOK
	if result.Source == domain.TaskGenerationSource_Malformed {
		status = http.StatusBadGateway
	}

	respondJSON(w, status, toTaskGenerationResponse(result))
}

// Health handles GET /api/v1/health.
func (api GoalCoachServer) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Goal Coach API is running",
	})
}
