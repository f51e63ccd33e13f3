package model

import "fmt"

// Issue is a single structural problem found by Validate
type Issue struct {
	QuestionID string `json:"questionId,omitempty"`
	Field      string `json:"field"`
	Message    string `json:"message"`
}

func (i Issue) String() string {
	if i.QuestionID == "" {
		return fmt.Sprintf("%s: %s", i.Field, i.Message)
	}
	return fmt.Sprintf("question %s, %s: %s", i.QuestionID, i.Field, i.Message)
}

// Validate runs the structural consistency pass over the form. It is an
// explicit, separately callable step: saving a form never invokes it, and a
// form that fails it can still be persisted and filled. Reported issues are
// the conditions that otherwise only surface at render time as missing inputs
// or unmatched options.
func (f *Form) Validate() []Issue {
	var issues []Issue

	if f.Title == "" {
		issues = append(issues, Issue{Field: "title", Message: "must not be empty"})
	}

	seen := map[string]bool{}
	for i := range f.Questions {
		q := &f.Questions[i]
		if seen[q.ID] {
			issues = append(issues, Issue{QuestionID: q.ID, Field: "id", Message: "duplicate question id"})
		}
		seen[q.ID] = true
		issues = append(issues, validateQuestion(q)...)
	}
	return issues
}

func validateQuestion(q *Question) []Issue {
	switch q.Type {
	case QuestionCategorize:
		if q.Settings.Categorize == nil {
			return []Issue{{QuestionID: q.ID, Field: "settings.categorize", Message: "missing payload"}}
		}
		return validateCategorize(q.ID, q.Settings.Categorize)
	case QuestionCloze:
		if q.Settings.Cloze == nil {
			return []Issue{{QuestionID: q.ID, Field: "settings.cloze", Message: "missing payload"}}
		}
		return validateCloze(q.ID, q.Settings.Cloze)
	case QuestionComprehension:
		if q.Settings.Comprehension == nil {
			return []Issue{{QuestionID: q.ID, Field: "settings.comprehension", Message: "missing payload"}}
		}
		return validateComprehension(q.ID, q.Settings.Comprehension)
	default:
		return []Issue{{QuestionID: q.ID, Field: "type", Message: fmt.Sprintf("unknown question type %q", q.Type)}}
	}
}

func validateCategorize(qid string, s *CategorizeSettings) []Issue {
	var issues []Issue
	keys := map[string]bool{}
	for _, c := range s.Categories {
		if keys[c.Key] {
			issues = append(issues, Issue{QuestionID: qid, Field: "categories", Message: fmt.Sprintf("duplicate category key %q", c.Key)})
		}
		keys[c.Key] = true
	}
	ids := map[string]bool{}
	for _, it := range s.Items {
		if ids[it.ID] {
			issues = append(issues, Issue{QuestionID: qid, Field: "items", Message: fmt.Sprintf("duplicate item id %q", it.ID)})
		}
		ids[it.ID] = true
		if !keys[it.CorrectCategoryKey] {
			issues = append(issues, Issue{QuestionID: qid, Field: "items", Message: fmt.Sprintf("item %q references missing category %q", it.ID, it.CorrectCategoryKey)})
		}
	}
	return issues
}

func validateCloze(qid string, s *ClozeSettings) []Issue {
	var issues []Issue
	defined := map[string]bool{}
	for _, b := range s.Blanks {
		if defined[b.Key] {
			issues = append(issues, Issue{QuestionID: qid, Field: "blanks", Message: fmt.Sprintf("duplicate blank key %q", b.Key)})
		}
		defined[b.Key] = true
	}

	referenced := map[string]bool{}
	for _, m := range BlankMarker.FindAllStringSubmatch(s.Text, -1) {
		referenced[m[1]] = true
		if !defined[m[1]] {
			issues = append(issues, Issue{QuestionID: qid, Field: "text", Message: fmt.Sprintf("blank marker __%s__ has no blanks entry", m[1])})
		}
	}
	for _, b := range s.Blanks {
		if !referenced[b.Key] {
			issues = append(issues, Issue{QuestionID: qid, Field: "blanks", Message: fmt.Sprintf("blank %q is never referenced in text", b.Key)})
		}
	}
	return issues
}

func validateComprehension(qid string, s *ComprehensionSettings) []Issue {
	var issues []Issue
	qids := map[string]bool{}
	for _, sq := range s.Questions {
		if qids[sq.QID] {
			issues = append(issues, Issue{QuestionID: qid, Field: "questions", Message: fmt.Sprintf("duplicate sub-question qid %q", sq.QID)})
		}
		qids[sq.QID] = true
		if sq.Kind == SubQuestionMCQ && len(sq.Options) == 0 {
			issues = append(issues, Issue{QuestionID: qid, Field: "questions", Message: fmt.Sprintf("mcq sub-question %q has no options", sq.QID)})
		}
	}
	return issues
}
