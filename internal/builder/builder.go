// Package builder implements the editor's state transitions over a form
// aggregate. Mutations that reference a missing question id degrade to silent
// no-ops: the editing surface may hold a stale view of the form, and a late
// edit against a removed question is dropped rather than failed.
package builder

import (
	"github.com/google/uuid"

	"formforge/internal/model"
)

// NewForm returns the empty form the editor starts from.
func NewForm() *model.Form {
	return &model.Form{
		Title:     "Untitled Form",
		Theme:     model.Theme{Accent: "#2563eb", Font: "Inter"},
		Questions: []model.Question{},
	}
}

// AddQuestion appends a new question of the given type with a generated id and
// the variant's default settings, and returns it. The only error is an unknown
// question type.
func AddQuestion(f *model.Form, t model.QuestionType) (*model.Question, error) {
	settings, err := model.DefaultSettings(t)
	if err != nil {
		return nil, err
	}
	q := model.Question{
		ID:       uuid.NewString(),
		Type:     t,
		Required: true,
		Settings: settings,
	}
	f.Questions = append(f.Questions, q)
	syncOrder(f)
	return &f.Questions[len(f.Questions)-1], nil
}

// RemoveQuestion deletes the question with the given id; no-op if absent.
func RemoveQuestion(f *model.Form, id string) {
	for i := range f.Questions {
		if f.Questions[i].ID == id {
			f.Questions = append(f.Questions[:i], f.Questions[i+1:]...)
			syncOrder(f)
			return
		}
	}
}

// FieldPatch is a shallow patch of the envelope's editable fields; nil fields
// are left untouched.
type FieldPatch struct {
	Title    *string `json:"title,omitempty"`
	Prompt   *string `json:"prompt,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Required *bool   `json:"required,omitempty"`
}

// UpdateField applies a shallow merge of patch onto the matching question's
// envelope fields; no-op if id is absent.
func UpdateField(f *model.Form, id string, patch FieldPatch) {
	q := f.Question(id)
	if q == nil {
		return
	}
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Prompt != nil {
		q.Prompt = *patch.Prompt
	}
	if patch.ImageURL != nil {
		q.ImageURL = *patch.ImageURL
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}
}

// CategorizePatch replaces whole sub-lists of a categorize payload
type CategorizePatch struct {
	Categories *[]model.Category       `json:"categories,omitempty"`
	Items      *[]model.CategorizeItem `json:"items,omitempty"`
}

// ClozePatch edits a cloze payload
type ClozePatch struct {
	Text   *string             `json:"text,omitempty"`
	Blanks *[]model.ClozeBlank `json:"blanks,omitempty"`
}

// ComprehensionPatch edits a comprehension payload
type ComprehensionPatch struct {
	Passage   *string              `json:"passage,omitempty"`
	Questions *[]model.SubQuestion `json:"questions,omitempty"`
}

// SettingsPatch carries at most one variant patch. Only the patch matching the
// question's current type is applied; the rest are ignored.
type SettingsPatch struct {
	Categorize    *CategorizePatch    `json:"categorize,omitempty"`
	Cloze         *ClozePatch         `json:"cloze,omitempty"`
	Comprehension *ComprehensionPatch `json:"comprehension,omitempty"`
}

// UpdateSettings shallow-merges the patch for the question's current variant
// into its settings payload; no-op if id is absent or the patch targets
// another variant.
func UpdateSettings(f *model.Form, id string, patch SettingsPatch) {
	q := f.Question(id)
	if q == nil {
		return
	}
	switch q.Type {
	case model.QuestionCategorize:
		if patch.Categorize == nil || q.Settings.Categorize == nil {
			return
		}
		if patch.Categorize.Categories != nil {
			q.Settings.Categorize.Categories = *patch.Categorize.Categories
		}
		if patch.Categorize.Items != nil {
			q.Settings.Categorize.Items = *patch.Categorize.Items
		}
	case model.QuestionCloze:
		if patch.Cloze == nil || q.Settings.Cloze == nil {
			return
		}
		if patch.Cloze.Text != nil {
			q.Settings.Cloze.Text = *patch.Cloze.Text
		}
		if patch.Cloze.Blanks != nil {
			q.Settings.Cloze.Blanks = *patch.Cloze.Blanks
		}
	case model.QuestionComprehension:
		if patch.Comprehension == nil || q.Settings.Comprehension == nil {
			return
		}
		if patch.Comprehension.Passage != nil {
			q.Settings.Comprehension.Passage = *patch.Comprehension.Passage
		}
		if patch.Comprehension.Questions != nil {
			q.Settings.Comprehension.Questions = *patch.Comprehension.Questions
		}
	}
}

// ChangeType switches a question to another variant, discarding the old
// settings payload and installing the new variant's defaults. No-op if id is
// absent or the type is unchanged.
func ChangeType(f *model.Form, id string, t model.QuestionType) error {
	q := f.Question(id)
	if q == nil || q.Type == t {
		return nil
	}
	settings, err := model.DefaultSettings(t)
	if err != nil {
		return err
	}
	q.Type = t
	q.Settings = settings
	return nil
}

// Reorder moves the question at index from to index to, shifting the entries
// between them. Out-of-range indexes are a no-op, matching a drag with no
// destination.
func Reorder(f *model.Form, from, to int) {
	f.Questions = spliceMove(f.Questions, from, to)
	syncOrder(f)
}

// syncOrder keeps the informational Order field in lockstep with slice
// position: slice order is the source of truth.
func syncOrder(f *model.Form) {
	for i := range f.Questions {
		f.Questions[i].Order = i + 1
	}
}

// spliceMove removes the element at from and reinserts it at to.
func spliceMove[T any](s []T, from, to int) []T {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return s
	}
	moved := s[from]
	s = append(s[:from], s[from+1:]...)
	s = append(s, moved)
	copy(s[to+1:], s[to:len(s)-1])
	s[to] = moved
	return s
}
