package domain

import "strings"

// MinGoalWords is the minimum number of words a goal statement must contain
// before any model is consulted.
const MinGoalWords = 3

// GoalValidationMode records which path scored a goal.
type GoalValidationMode string

const (
	// GoalValidationMode_Classifier means the trained network scored the goal.
	GoalValidationMode_Classifier GoalValidationMode = "classifier"
	// GoalValidationMode_Similarity means the cosine-similarity fallback
	// scored the goal because the network was unavailable.
	GoalValidationMode_Similarity GoalValidationMode = "similarity"
	// GoalValidationMode_Rejected means the goal was rejected before any
	// model ran (too short, or unembeddable input).
	GoalValidationMode_Rejected GoalValidationMode = "rejected"
)

// GoalValidation is the structured result of validating a goal statement.
type GoalValidation struct {
	IsValid     bool
	Confidence  float64
	Suggestions []string
	Mode        GoalValidationMode
}

// GoalWordCount counts whitespace-delimited words in a goal statement.
func GoalWordCount(goalText string) int {
	return len(strings.Fields(goalText))
}
