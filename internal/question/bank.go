package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Bank holds the full question pool with precomputed indices.
type Bank struct {
	Version string

	questions    []Question
	byID         map[string]*Question
	byCode       map[string]*Question
	byExamType   map[ExamType][]Question
	bySubelement map[string][]Question
}

// bankFile mirrors the on-disk JSON layout.
type bankFile struct {
	Version   string `json:"version"`
	Questions []struct {
		ID           string   `json:"id"`
		DisplayCode  string   `json:"display_code"`
		Prompt       string   `json:"prompt"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		ExamType     string   `json:"exam_type"`
	} `json:"questions"`
}

// LoadBank reads and parses the question bank at path.
func LoadBank(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(raw)
}

// ParseBank validates raw JSON against the bank schema and builds the
// indexed bank.
func ParseBank(raw []byte) (*Bank, error) {
	if err := validateBank(raw); err != nil {
		return nil, err
	}

	var f bankFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	b := &Bank{
		Version:      f.Version,
		byID:         make(map[string]*Question, len(f.Questions)),
		byCode:       make(map[string]*Question, len(f.Questions)),
		byExamType:   make(map[ExamType][]Question),
		bySubelement: make(map[string][]Question),
	}

	seenIDs := make(map[string]bool, len(f.Questions))
	seenCodes := make(map[string]bool, len(f.Questions))
	for _, fq := range f.Questions {
		code, err := ParseDisplayCode(fq.DisplayCode)
		if err != nil {
			return nil, err
		}
		examType, err := ParseExamType(fq.ExamType)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", fq.DisplayCode, err)
		}

		q := Question{
			ID:           fq.ID,
			DisplayCode:  fq.DisplayCode,
			Prompt:       fq.Prompt,
			CorrectIndex: fq.CorrectIndex,
			ExamType:     examType,
			Subelement:   code.Subelement,
			Group:        code.Group,
		}
		copy(q.Options[:], fq.Options)

		if seenIDs[q.ID] {
			return nil, fmt.Errorf("duplicate question ID: %s", q.ID)
		}
		if seenCodes[q.DisplayCode] {
			return nil, fmt.Errorf("duplicate display code: %s", q.DisplayCode)
		}
		seenIDs[q.ID] = true
		seenCodes[q.DisplayCode] = true

		b.questions = append(b.questions, q)
	}

	// Index after the slice stops growing so pointers stay valid.
	for i := range b.questions {
		q := &b.questions[i]
		b.byID[q.ID] = q
		b.byCode[q.DisplayCode] = q
		b.byExamType[q.ExamType] = append(b.byExamType[q.ExamType], *q)
		b.bySubelement[q.Subelement] = append(b.bySubelement[q.Subelement], *q)
	}

	return b, nil
}

// validateBank checks raw against the embedded JSON schema.
func validateBank(raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schemaDoc, err := jsonschema.UnmarshalJSON(strings.NewReader(bankSchema))
	if err != nil {
		return fmt.Errorf("parse bank schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("bank.schema.json", schemaDoc); err != nil {
		return fmt.Errorf("add bank schema: %w", err)
	}
	compiled, err := compiler.Compile("bank.schema.json")
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("question bank failed schema validation: %w", err)
	}
	return nil
}

// Len returns the total number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// ByID returns the question with the given opaque ID.
func (b *Bank) ByID(id string) (Question, bool) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// ByCode returns the question with the given display code.
func (b *Bank) ByCode(code string) (Question, bool) {
	q, ok := b.byCode[code]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// Pool returns a copy of the questions for one exam type.
func (b *Bank) Pool(t ExamType) []Question {
	src := b.byExamType[t]
	out := make([]Question, len(src))
	copy(out, src)
	return out
}

// SubelementPool returns a copy of the questions for one subelement.
func (b *Bank) SubelementPool(sub string) []Question {
	src := b.bySubelement[sub]
	out := make([]Question, len(src))
	copy(out, src)
	return out
}

// Subelements returns the sorted subelement codes for an exam type.
func (b *Bank) Subelements(t ExamType) []string {
	seen := make(map[string]bool)
	for _, q := range b.byExamType[t] {
		seen[q.Subelement] = true
	}
	subs := make([]string, 0, len(seen))
	for s := range seen {
		subs = append(subs, s)
	}
	sort.Strings(subs)
	return subs
}
