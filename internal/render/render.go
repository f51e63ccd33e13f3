// Package render projects a form and a partial answer set onto the input
// surface a fill page needs. The projection is pure and stateless; the
// answer-update events it implies are (questionID, subKey, value) triples fed
// back through capture.AnswerSet.Record.
package render

import (
	"fmt"

	"formforge/internal/capture"
	"formforge/internal/model"
)

// Option is one selectable category
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CategorizeRow is the input row for one item: a choice among all categories
type CategorizeRow struct {
	ItemID   string   `json:"itemId"`
	Label    string   `json:"label"`
	Options  []Option `json:"options"`
	Selected string   `json:"selected,omitempty"`
}

type CategorizeView struct {
	Items []CategorizeRow `json:"items"`
}

// ClozeSegment is either a literal text fragment or an input for one blank.
// Marker text itself never appears; only the prose around it and the input.
type ClozeSegment struct {
	Blank bool   `json:"blank"`
	Text  string `json:"text,omitempty"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

type ClozeView struct {
	Segments []ClozeSegment `json:"segments"`
}

// SubQuestionView renders either an mcq single-select or a short free-text
// input, carrying any value already recorded
type SubQuestionView struct {
	QID          string                `json:"qid"`
	QuestionText string                `json:"questionText"`
	Kind         model.SubQuestionKind `json:"kind"`
	Options      []string              `json:"options,omitempty"`
	Value        string                `json:"value,omitempty"`
}

type ComprehensionView struct {
	Passage   string            `json:"passage"`
	Questions []SubQuestionView `json:"questions"`
}

// QuestionView is the rendered input surface for one question; exactly one of
// the variant views is set, matching Type.
type QuestionView struct {
	ID            string             `json:"id"`
	Type          model.QuestionType `json:"type"`
	Title         string             `json:"title"`
	Prompt        string             `json:"prompt"`
	Required      bool               `json:"required"`
	ImageURL      string             `json:"imageUrl,omitempty"`
	Categorize    *CategorizeView    `json:"categorize,omitempty"`
	Cloze         *ClozeView         `json:"cloze,omitempty"`
	Comprehension *ComprehensionView `json:"comprehension,omitempty"`
}

// FormView is the full fill page
type FormView struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	HeaderImageURL string         `json:"headerImageUrl,omitempty"`
	Theme          model.Theme    `json:"theme"`
	Questions      []QuestionView `json:"questions"`
}

// Form renders every question of the form against the partial answer set.
func Form(f *model.Form, answers capture.AnswerSet) (*FormView, error) {
	view := &FormView{
		ID:             f.ID,
		Title:          f.Title,
		Description:    f.Description,
		HeaderImageURL: f.HeaderImageURL,
		Theme:          f.Theme,
		Questions:      make([]QuestionView, 0, len(f.Questions)),
	}
	for i := range f.Questions {
		qv, err := Question(&f.Questions[i], answers)
		if err != nil {
			return nil, err
		}
		view.Questions = append(view.Questions, *qv)
	}
	return view, nil
}

// Question renders one question's variant-specific input surface.
func Question(q *model.Question, answers capture.AnswerSet) (*QuestionView, error) {
	view := &QuestionView{
		ID:       q.ID,
		Type:     q.Type,
		Title:    q.Title,
		Prompt:   q.Prompt,
		Required: q.Required,
		ImageURL: q.ImageURL,
	}
	switch q.Type {
	case model.QuestionCategorize:
		if q.Settings.Categorize == nil {
			return nil, fmt.Errorf("question %s: missing categorize settings", q.ID)
		}
		view.Categorize = renderCategorize(q.ID, q.Settings.Categorize, answers)
	case model.QuestionCloze:
		if q.Settings.Cloze == nil {
			return nil, fmt.Errorf("question %s: missing cloze settings", q.ID)
		}
		view.Cloze = renderCloze(q.ID, q.Settings.Cloze, answers)
	case model.QuestionComprehension:
		if q.Settings.Comprehension == nil {
			return nil, fmt.Errorf("question %s: missing comprehension settings", q.ID)
		}
		view.Comprehension = renderComprehension(q.ID, q.Settings.Comprehension, answers)
	default:
		return nil, fmt.Errorf("question %s: unknown question type %q", q.ID, q.Type)
	}
	return view, nil
}

func renderCategorize(qid string, s *model.CategorizeSettings, answers capture.AnswerSet) *CategorizeView {
	opts := make([]Option, 0, len(s.Categories))
	for _, c := range s.Categories {
		opts = append(opts, Option{Key: c.Key, Label: c.Label})
	}
	view := &CategorizeView{Items: make([]CategorizeRow, 0, len(s.Items))}
	for _, it := range s.Items {
		selected, _ := answers.Value(qid, it.ID)
		view.Items = append(view.Items, CategorizeRow{
			ItemID:   it.ID,
			Label:    it.Label,
			Options:  opts,
			Selected: selected,
		})
	}
	return view
}

// renderCloze splits the text on blank markers. Each marker becomes an input
// keyed by its digit group; the prose between markers becomes literal
// segments. Blanks defined in the blanks list but never referenced in the text
// produce nothing.
func renderCloze(qid string, s *model.ClozeSettings, answers capture.AnswerSet) *ClozeView {
	view := &ClozeView{Segments: []ClozeSegment{}}
	last := 0
	for _, m := range model.BlankMarker.FindAllStringSubmatchIndex(s.Text, -1) {
		if lit := s.Text[last:m[0]]; lit != "" {
			view.Segments = append(view.Segments, ClozeSegment{Text: lit})
		}
		key := s.Text[m[2]:m[3]]
		value, _ := answers.Value(qid, key)
		view.Segments = append(view.Segments, ClozeSegment{Blank: true, Key: key, Value: value})
		last = m[1]
	}
	if lit := s.Text[last:]; lit != "" {
		view.Segments = append(view.Segments, ClozeSegment{Text: lit})
	}
	return view
}

func renderComprehension(qid string, s *model.ComprehensionSettings, answers capture.AnswerSet) *ComprehensionView {
	view := &ComprehensionView{
		Passage:   s.Passage,
		Questions: make([]SubQuestionView, 0, len(s.Questions)),
	}
	for _, sq := range s.Questions {
		value, _ := answers.Value(qid, sq.QID)
		sv := SubQuestionView{
			QID:          sq.QID,
			QuestionText: sq.QuestionText,
			Kind:         sq.Kind,
			Value:        value,
		}
		if sq.Kind == model.SubQuestionMCQ {
			sv.Options = sq.Options
		}
		view.Questions = append(view.Questions, sv)
	}
	return view
}
