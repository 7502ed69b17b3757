package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Goal text length bounds enforced at the boundary, before the use case runs.
const (
	minGoalTextLen = 5
	maxGoalTextLen = 500
)

// ValidateGoal handles POST /api/v1/validate-goal.
func (api GoalCoachServer) ValidateGoal(w http.ResponseWriter, r *http.Request) {
	var req GoalValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	if len(req.GoalText) < minGoalTextLen || len(req.GoalText) > maxGoalTextLen {
		respondError(w, badRequest(fmt.Sprintf(
			"goal_text must be between %d and %d characters", minGoalTextLen, maxGoalTextLen,
		)))
		return
	}

	result, err := api.ValidateGoalUseCase.Execute(r.Context(), req.GoalText)
	if err != nil {
		api.Logger.Printf("Error validating goal: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := GoalValidationResponse{
		IsValid:         result.IsValid,
		ConfidenceScore: result.Confidence,
		Suggestions:     result.Suggestions,
	}
	if result.IsValid {
		resp.ProcessedGoal = &req.GoalText
	}

	respondJSON(w, http.StatusOK, resp)
}
