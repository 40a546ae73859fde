package explain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jmarlow/hamprep/internal/question"
)

func sampleQuestion() question.Question {
	return question.Question{
		ID:           "q1",
		DisplayCode:  "T1A01",
		Prompt:       "Which agency regulates the Amateur Radio Service in the United States?",
		Options:      [4]string{"FEMA", "FCC", "NOAA", "ITU"},
		CorrectIndex: 1,
		ExamType:     question.ExamTechnician,
		Subelement:   "T1",
		Group:        "A",
	}
}

func TestExplainParsesStructuredResponse(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{
			"explanation": "The FCC regulates the Amateur Radio Service under Part 97.",
			"key_concept": "FCC authority over amateur radio",
			"memory_hook": "F-C-C: Federal Communications Commission"
		}`),
	})
	e := NewExplainer(mock)

	out, err := e.Explain(context.Background(), sampleQuestion(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if out.KeyConcept != "FCC authority over amateur radio" {
		t.Errorf("key concept = %q", out.KeyConcept)
	}
	if out.Explanation == "" || out.MemoryHook == "" {
		t.Errorf("explanation = %+v", out)
	}
}

func TestExplainPromptNamesBothAnswers(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"explanation": "x", "key_concept": "y"}`),
	})
	e := NewExplainer(mock)

	if _, err := e.Explain(context.Background(), sampleQuestion(), 0); err != nil {
		t.Fatal(err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "B. FCC") {
		t.Errorf("prompt missing correct answer: %s", prompt)
	}
	if !strings.Contains(prompt, "A. FEMA") {
		t.Errorf("prompt missing student's choice: %s", prompt)
	}
	if mock.Calls[0].Schema == nil {
		t.Error("request should carry the explanation schema")
	}
}

func TestExplainWithoutProvider(t *testing.T) {
	e := NewExplainer(nil)
	if e.Available() {
		t.Error("explainer with no provider reports available")
	}

	_, err := e.Explain(context.Background(), sampleQuestion(), 0)
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestValidateResponseRejectsMissingFields(t *testing.T) {
	err := validateResponse(explanationSchema, json.RawMessage(`{"explanation": "only half"}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}

	if err := validateResponse(explanationSchema, json.RawMessage(`{"explanation": "a", "key_concept": "b"}`)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}
