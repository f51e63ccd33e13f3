// Package capture accumulates a respondent's answers while filling a form and
// packages them into a submission. Every variant is keyed: the sub-key is the
// item id (categorize), blank key (cloze), or sub-question qid
// (comprehension). No validation runs here: required questions may be left
// unanswered and stale keys are carried through to storage untouched.
package capture

import (
	"formforge/internal/model"
)

// AnswerSet maps question id to that question's keyed answers.
type AnswerSet map[string]model.AnswerValue

// Record inserts or overwrites the value for (questionID, subKey). A second
// record for the same pair replaces the first.
func (s AnswerSet) Record(questionID, subKey, value string) {
	v, ok := s[questionID]
	if !ok {
		v = model.AnswerValue{}
		s[questionID] = v
	}
	v[subKey] = value
}

// Value looks up the recorded value for (questionID, subKey).
func (s AnswerSet) Value(questionID, subKey string) (string, bool) {
	v, ok := s[questionID]
	if !ok {
		return "", false
	}
	val, ok := v[subKey]
	return val, ok
}

// NewSubmission packages the answer set with its submission context. The
// caller hands the result to the response store; the submission is immutable
// from then on.
func NewSubmission(formID string, answers AnswerSet, meta model.SubmissionMeta) *model.FormResponse {
	packed := make(map[string]model.AnswerValue, len(answers))
	for qid, v := range answers {
		packed[qid] = v
	}
	return &model.FormResponse{
		FormID:  formID,
		Answers: packed,
		Meta:    meta,
	}
}
