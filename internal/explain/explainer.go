package explain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmarlow/hamprep/internal/question"
)

// Explanation is the structured coaching output for one missed
// question.
type Explanation struct {
	// Explanation says why the correct answer is correct, in two or
	// three sentences.
	Explanation string `json:"explanation"`

	// KeyConcept names the single rule or fact the question tests.
	KeyConcept string `json:"key_concept"`

	// MemoryHook is a short mnemonic for the concept, when one fits.
	MemoryHook string `json:"memory_hook,omitempty"`
}

// explanationSchema constrains the provider's structured output.
var explanationSchema = &Schema{
	Name:        "question-explanation",
	Description: "Coaching explanation for a missed exam question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is correct, 2-3 sentences",
			},
			"key_concept": map[string]any{
				"type":        "string",
				"description": "The single rule or fact this question tests",
			},
			"memory_hook": map[string]any{
				"type":        "string",
				"description": "A short mnemonic, if a natural one exists",
			},
		},
		"required":             []any{"explanation", "key_concept"},
		"additionalProperties": false,
	},
}

const explainerSystem = `You are a ham radio license exam coach. A student just missed a
question from the published question pool. Explain the correct answer
plainly, in terms a newcomer to amateur radio can follow. Cite rules
by their plain meaning, not section numbers.`

// Explainer turns missed questions into coaching explanations.
type Explainer struct {
	provider Provider
}

// NewExplainer creates an explainer over the provider. A nil provider
// is allowed; Explain then reports ErrProviderUnavailable.
func NewExplainer(provider Provider) *Explainer {
	return &Explainer{provider: provider}
}

// Available reports whether a provider is configured.
func (e *Explainer) Available() bool {
	return e != nil && e.provider != nil
}

// Explain asks the provider why the correct answer to q is correct,
// given the option the learner chose instead.
func (e *Explainer) Explain(ctx context.Context, q question.Question, selectedIndex int) (*Explanation, error) {
	if !e.Available() {
		return nil, &ErrProviderUnavailable{}
	}

	prompt := fmt.Sprintf(
		"Question %s: %s\n\nOptions:\n%s\nCorrect answer: %s\nThe student chose: %s\n",
		q.DisplayCode, q.Prompt, formatOptions(q), optionLabel(q, q.CorrectIndex), optionLabel(q, selectedIndex),
	)

	resp, err := e.provider.Generate(ctx, Request{
		System:    explainerSystem,
		Messages:  []Message{{Role: RoleUser, Content: prompt}},
		Schema:    explanationSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, err
	}

	var out Explanation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &out, nil
}

func formatOptions(q question.Question) string {
	s := ""
	for i, opt := range q.Options {
		s += fmt.Sprintf("  %c. %s\n", 'A'+i, opt)
	}
	return s
}

func optionLabel(q question.Question, idx int) string {
	if idx < 0 || idx >= len(q.Options) {
		return "(no answer)"
	}
	return fmt.Sprintf("%c. %s", 'A'+idx, q.Options[idx])
}
