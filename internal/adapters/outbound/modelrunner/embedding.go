package modelrunner

import (
	"fmt"
	"strings"
)

// embeddingPrompter shapes the text sent to the embeddings endpoint. Some
// embedding models score better when queries and documents use different
// prefixes; reference phrases are indexed as documents, candidate goals as
// queries.
type embeddingPrompter interface {
	PhrasePrompt(phrase string) string
	GoalPrompt(goalText string) string
}

// prompterFor picks a prompter based on the model name.
func prompterFor(model string) embeddingPrompter {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaPrompter{}
	}
	return plainPrompter{}
}

// gemmaPrompter implements the task-prefixed format the Gemma embedding
// models expect.
type gemmaPrompter struct{}

func (gemmaPrompter) PhrasePrompt(phrase string) string {
	return fmt.Sprintf("title: none | text: %s", phrase)
}

func (gemmaPrompter) GoalPrompt(goalText string) string {
	return fmt.Sprintf("task: classification | query: %s", goalText)
}

// plainPrompter passes text through unchanged for models without a prompt
// convention.
type plainPrompter struct{}

func (plainPrompter) PhrasePrompt(phrase string) string {
	return phrase
}

func (plainPrompter) GoalPrompt(goalText string) string {
	return goalText
}
