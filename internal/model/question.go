package model

import "fmt"

// QuestionType discriminates which settings payload a question carries
type QuestionType string

const (
	QuestionCategorize    QuestionType = "categorize"    // sort items into categories
	QuestionCloze         QuestionType = "cloze"         // fill-in-the-blank text
	QuestionComprehension QuestionType = "comprehension" // passage with sub-questions
)

// SubQuestionKind is the answer mode of a comprehension sub-question
type SubQuestionKind string

const (
	SubQuestionMCQ   SubQuestionKind = "mcq"   // single choice among options
	SubQuestionShort SubQuestionKind = "short" // free text
)

// Category is one bucket of a categorize question
type Category struct {
	Key   string `json:"key" bson:"key"`
	Label string `json:"label" bson:"label"`
}

// CategorizeItem is one sortable item; CorrectCategoryKey references a category key
type CategorizeItem struct {
	ID                 string `json:"id" bson:"id"`
	Label              string `json:"label" bson:"label"`
	CorrectCategoryKey string `json:"correctCategoryKey" bson:"correctCategoryKey"`
}

type CategorizeSettings struct {
	Categories []Category       `json:"categories" bson:"categories"`
	Items      []CategorizeItem `json:"items" bson:"items"`
}

// ClozeBlank is the expected answer for one blank marker; Options, when present,
// turn the blank into a dropdown
type ClozeBlank struct {
	Key     string   `json:"key" bson:"key"`
	Answer  string   `json:"answer" bson:"answer"`
	Options []string `json:"options,omitempty" bson:"options,omitempty"`
}

type ClozeSettings struct {
	Text   string       `json:"text" bson:"text"`
	Blanks []ClozeBlank `json:"blanks" bson:"blanks"`
}

// SubQuestion is one question asked about a comprehension passage
type SubQuestion struct {
	QID          string          `json:"qid" bson:"qid"`
	QuestionText string          `json:"questionText" bson:"questionText"`
	Kind         SubQuestionKind `json:"kind" bson:"kind"`
	Options      []string        `json:"options,omitempty" bson:"options,omitempty"`
	Answer       string          `json:"answer,omitempty" bson:"answer,omitempty"`
}

type ComprehensionSettings struct {
	Passage   string        `json:"passage" bson:"passage"`
	Questions []SubQuestion `json:"questions" bson:"questions"`
}

// Settings holds exactly one variant payload, the one matching the question's type.
// Switching a question to another type discards the old payload and installs the
// new variant's defaults.
type Settings struct {
	Categorize    *CategorizeSettings    `json:"categorize,omitempty" bson:"categorize,omitempty"`
	Cloze         *ClozeSettings         `json:"cloze,omitempty" bson:"cloze,omitempty"`
	Comprehension *ComprehensionSettings `json:"comprehension,omitempty" bson:"comprehension,omitempty"`
}

// DefaultCategorize returns the placeholder payload for a new categorize question:
// two empty categories and one item assigned to the first.
func DefaultCategorize() *CategorizeSettings {
	return &CategorizeSettings{
		Categories: []Category{
			{Key: "cat1", Label: ""},
			{Key: "cat2", Label: ""},
		},
		Items: []CategorizeItem{
			{ID: "i1", Label: "", CorrectCategoryKey: "cat1"},
		},
	}
}

// DefaultCloze returns the placeholder payload for a new cloze question:
// empty text and two blanks keyed "1" and "2".
func DefaultCloze() *ClozeSettings {
	return &ClozeSettings{
		Text: "",
		Blanks: []ClozeBlank{
			{Key: "1", Answer: "", Options: []string{}},
			{Key: "2", Answer: "", Options: []string{}},
		},
	}
}

// DefaultComprehension returns the placeholder payload for a new comprehension
// question: empty passage and one short-answer sub-question.
func DefaultComprehension() *ComprehensionSettings {
	return &ComprehensionSettings{
		Passage: "",
		Questions: []SubQuestion{
			{QID: "q1", QuestionText: "", Kind: SubQuestionShort, Options: []string{}},
		},
	}
}

// DefaultSettings builds the default payload for the given question type.
func DefaultSettings(t QuestionType) (Settings, error) {
	switch t {
	case QuestionCategorize:
		return Settings{Categorize: DefaultCategorize()}, nil
	case QuestionCloze:
		return Settings{Cloze: DefaultCloze()}, nil
	case QuestionComprehension:
		return Settings{Comprehension: DefaultComprehension()}, nil
	default:
		return Settings{}, fmt.Errorf("unknown question type %q", t)
	}
}
