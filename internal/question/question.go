package question

import (
	"fmt"
	"regexp"
)

// ExamType identifies a license exam element.
type ExamType string

const (
	ExamTechnician ExamType = "technician"
	ExamGeneral    ExamType = "general"
	ExamExtra      ExamType = "extra"
)

// AllExamTypes returns the exam types in license order.
func AllExamTypes() []ExamType {
	return []ExamType{ExamTechnician, ExamGeneral, ExamExtra}
}

// DisplayName returns a human-readable label for the exam type.
func (t ExamType) DisplayName() string {
	switch t {
	case ExamTechnician:
		return "Technician"
	case ExamGeneral:
		return "General"
	case ExamExtra:
		return "Extra"
	default:
		return string(t)
	}
}

// ParseExamType validates and normalizes an exam type string.
func ParseExamType(s string) (ExamType, error) {
	switch ExamType(s) {
	case ExamTechnician, ExamGeneral, ExamExtra:
		return ExamType(s), nil
	}
	return "", fmt.Errorf("unknown exam type: %q", s)
}

// Question is one multiple-choice item from the question bank.
//
// A question has two identities: ID is the opaque storage key, and
// DisplayCode is the human-readable bank code (e.g. "T1A01") shown to
// learners and printed on the published question pools. The two are
// independent fields; code-derived structure (subelement, group) comes
// only from ParseDisplayCode, never from inspecting ID.
type Question struct {
	ID           string
	DisplayCode  string
	Prompt       string
	Options      [4]string
	CorrectIndex int
	ExamType     ExamType

	// Subelement and Group are filled from DisplayCode at load time.
	Subelement string
	Group      string
}

// Code is the decomposed form of a display code.
type Code struct {
	Subelement string // e.g. "T1"
	Group      string // e.g. "A"
	Ordinal    int    // e.g. 1 for "01"
}

var displayCodeRe = regexp.MustCompile(`^([TGE][0-9])([A-Z])([0-9]{2})$`)

// ParseDisplayCode decomposes a bank display code like "T1A01" into
// its subelement, group, and ordinal. This is the only sanctioned
// mapping from display codes to bank structure.
func ParseDisplayCode(code string) (Code, error) {
	m := displayCodeRe.FindStringSubmatch(code)
	if m == nil {
		return Code{}, fmt.Errorf("malformed display code: %q", code)
	}
	ordinal := int(m[3][0]-'0')*10 + int(m[3][1]-'0')
	return Code{Subelement: m[1], Group: m[2], Ordinal: ordinal}, nil
}
