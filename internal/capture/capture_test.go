package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formforge/internal/model"
)

func TestRecordOverwrites(t *testing.T) {
	answers := AnswerSet{}

	answers.Record("q1", "i1", "cat2")
	answers.Record("q1", "i1", "cat1")

	require.Len(t, answers["q1"], 1)
	v, ok := answers.Value("q1", "i1")
	assert.True(t, ok)
	assert.Equal(t, "cat1", v)
}

func TestRecordKeepsQuestionsSeparate(t *testing.T) {
	answers := AnswerSet{}

	answers.Record("q1", "1", "sun")
	answers.Record("q2", "1", "moon")

	v1, _ := answers.Value("q1", "1")
	v2, _ := answers.Value("q2", "1")
	assert.Equal(t, "sun", v1)
	assert.Equal(t, "moon", v2)
}

func TestValueMiss(t *testing.T) {
	answers := AnswerSet{}

	_, ok := answers.Value("q1", "i1")
	assert.False(t, ok)

	answers.Record("q1", "i1", "cat1")
	_, ok = answers.Value("q1", "other")
	assert.False(t, ok)
}

func TestNewSubmission(t *testing.T) {
	answers := AnswerSet{}
	answers.Record("q1", "sq1", "B")

	meta := model.SubmissionMeta{UserAgent: "curl/8.0", IP: "10.0.0.1"}
	resp := NewSubmission("form-1", answers, meta)

	assert.Equal(t, "form-1", resp.FormID)
	assert.Equal(t, meta, resp.Meta)
	assert.Equal(t, map[string]model.AnswerValue{"q1": {"sq1": "B"}}, resp.Answers)
	assert.True(t, resp.SubmittedAt.IsZero(), "timestamp is set by the store")
}

func TestSubmissionCarriesStaleKeysUntouched(t *testing.T) {
	answers := AnswerSet{}
	answers.Record("deleted-question", "deleted-item", "cat9")

	resp := NewSubmission("form-1", answers, model.SubmissionMeta{})
	assert.Equal(t, "cat9", resp.Answers["deleted-question"]["deleted-item"])
}
