package question

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBankJSON builds a minimal valid bank with the given questions.
func testBankJSON(entries ...string) []byte {
	return []byte(fmt.Sprintf(`{"version":"2026.1","questions":[%s]}`,
		strings.Join(entries, ",")))
}

func entry(id, code, examType string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"display_code": %q,
		"prompt": "Which of these is correct?",
		"options": ["A", "B", "C", "D"],
		"correct_index": 1,
		"exam_type": %q
	}`, id, code, examType)
}

func TestParseBank(t *testing.T) {
	b, err := ParseBank(testBankJSON(
		entry("q-1", "T1A01", "technician"),
		entry("q-2", "T1A02", "technician"),
		entry("q-3", "G2B05", "general"),
	))
	require.NoError(t, err)

	assert.Equal(t, 3, b.Len())

	q, ok := b.ByID("q-1")
	require.True(t, ok, "expected q-1 in bank")
	assert.Equal(t, "T1A01", q.DisplayCode)
	assert.Equal(t, "T1", q.Subelement)
	assert.Equal(t, "A", q.Group)

	assert.Len(t, b.Pool(ExamTechnician), 2)
	assert.Equal(t, []string{"G2"}, b.Subelements(ExamGeneral))
}

func TestParseBankRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty questions", `{"version":"1","questions":[]}`},
		{"bad display code", `{"version":"1","questions":[{"id":"q-1","display_code":"X9Z99","prompt":"p","options":["a","b","c","d"],"correct_index":0,"exam_type":"technician"}]}`},
		{"three options", `{"version":"1","questions":[{"id":"q-1","display_code":"T1A01","prompt":"p","options":["a","b","c"],"correct_index":0,"exam_type":"technician"}]}`},
		{"correct index out of range", `{"version":"1","questions":[{"id":"q-1","display_code":"T1A01","prompt":"p","options":["a","b","c","d"],"correct_index":4,"exam_type":"technician"}]}`},
		{"unknown exam type", `{"version":"1","questions":[{"id":"q-1","display_code":"T1A01","prompt":"p","options":["a","b","c","d"],"correct_index":0,"exam_type":"novice"}]}`},
		{"not json", `{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestParseBankRejectsDuplicates(t *testing.T) {
	_, err := ParseBank(testBankJSON(
		entry("q-1", "T1A01", "technician"),
		entry("q-1", "T1A02", "technician"),
	))
	require.Error(t, err, "duplicate ID")

	_, err = ParseBank(testBankJSON(
		entry("q-1", "T1A01", "technician"),
		entry("q-2", "T1A01", "technician"),
	))
	require.Error(t, err, "duplicate display code")
}

func TestParseDisplayCode(t *testing.T) {
	tests := []struct {
		code    string
		want    Code
		wantErr bool
	}{
		{"T1A01", Code{"T1", "A", 1}, false},
		{"G2B05", Code{"G2", "B", 5}, false},
		{"E9D11", Code{"E9", "D", 11}, false},
		{"t1a01", Code{}, true},
		{"T1A1", Code{}, true},
		{"Z1A01", Code{}, true},
		{"", Code{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDisplayCode(tt.code)
		if tt.wantErr {
			require.Error(t, err, "ParseDisplayCode(%q)", tt.code)
			continue
		}
		require.NoError(t, err, "ParseDisplayCode(%q)", tt.code)
		assert.Equal(t, tt.want, got)
	}
}
