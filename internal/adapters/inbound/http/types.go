package http

// Wire types for the REST API. Shapes follow the domain entities; field
// names stay snake_case for client compatibility.

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

const (
	ErrorCode_BadRequest    ErrorCode = "BAD_REQUEST"
	ErrorCode_UpstreamError ErrorCode = "UPSTREAM_ERROR"
	ErrorCode_InternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorResp is the error envelope returned by all endpoints.
type ErrorResp struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// GoalValidationRequest is the body of POST /api/v1/validate-goal.
type GoalValidationRequest struct {
	GoalText string  `json:"goal_text"`
	UserID   *string `json:"user_id,omitempty"`
}

// GoalValidationResponse is the reply to a goal validation request.
type GoalValidationResponse struct {
	IsValid         bool     `json:"is_valid"`
	ConfidenceScore float64  `json:"confidence_score"`
	Suggestions     []string `json:"suggestions,omitempty"`
	ProcessedGoal   *string  `json:"processed_goal,omitempty"`
}

// TransactionPayload is one transaction in a task generation request.
// Dates are accepted in any common format.
type TransactionPayload struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date,omitempty"`
	Merchant string  `json:"merchant,omitempty"`
}

// TaskGenerationRequest is the body of POST /api/v1/generate-tasks.
type TaskGenerationRequest struct {
	ValidatedGoal string               `json:"validated_goal"`
	Transactions  []TransactionPayload `json:"transactions"`
}

// DailyTaskPayload is one generated task on the wire.
type DailyTaskPayload struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	EstimatedImpact float64  `json:"estimated_impact"`
	Difficulty      string   `json:"difficulty"`
	Category        string   `json:"category"`
	ActionableSteps []string `json:"actionable_steps"`
}

// TaskGenerationResponse is the reply to a task generation request.
type TaskGenerationResponse struct {
	Tasks                []DailyTaskPayload `json:"tasks"`
	TotalPotentialImpact float64            `json:"total_potential_impact"`
	AnalysisSummary      string             `json:"analysis_summary"`
}

// HealthResponse is the reply to the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
