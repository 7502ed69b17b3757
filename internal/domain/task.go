package domain

import "github.com/google/uuid"

// TaskDifficulty grades how demanding a daily task is.
type TaskDifficulty string

const (
	TaskDifficulty_Easy   TaskDifficulty = "easy"
	TaskDifficulty_Medium TaskDifficulty = "medium"
	TaskDifficulty_Hard   TaskDifficulty = "hard"
)

// TaskCategory groups daily tasks by the kind of behavior they target.
type TaskCategory string

const (
	TaskCategory_Spending TaskCategory = "spending"
	TaskCategory_Saving   TaskCategory = "saving"
	TaskCategory_Earning  TaskCategory = "earning"
	TaskCategory_Planning TaskCategory = "planning"
)

// DailyTask is one actionable task generated for the user.
type DailyTask struct {
	ID              uuid.UUID
	Title           string
	Description     string
	EstimatedImpact float64
	Difficulty      TaskDifficulty
	Category        TaskCategory
	ActionableSteps []string
}

// TaskGenerationSource records which path produced a generation result.
type TaskGenerationSource string

const (
	// TaskGenerationSource_Model means the generative model produced the tasks.
	TaskGenerationSource_Model TaskGenerationSource = "model"
	// TaskGenerationSource_Fallback means the deterministic templates produced
	// the tasks because the model was unconfigured or unreachable.
	TaskGenerationSource_Fallback TaskGenerationSource = "fallback"
	// TaskGenerationSource_Malformed means the model replied with text that
	// could not be parsed; the result carries no tasks, only a diagnostic
	// summary.
	TaskGenerationSource_Malformed TaskGenerationSource = "malformed"
)

// TaskGenerationResult is the outcome of one task-generation request.
type TaskGenerationResult struct {
	Tasks                []DailyTask
	TotalPotentialImpact float64
	AnalysisSummary      string
	Source               TaskGenerationSource
}
