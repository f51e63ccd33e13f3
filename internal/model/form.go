package model

import (
	"regexp"
	"time"
)

// BlankMarker matches the __<digits>__ placeholder syntax inside cloze text.
// The captured group is the blank key.
var BlankMarker = regexp.MustCompile(`__(\d+)__`)

// Theme configures form appearance
type Theme struct {
	Accent string `json:"accent" bson:"accent"`
	Font   string `json:"font" bson:"font"`
}

// Question is the common envelope shared by every variant. Order mirrors the
// question's 1-based position in Form.Questions and is re-synced on every
// mutation; the slice order is the display and fill order.
type Question struct {
	ID       string       `json:"id" bson:"id"`
	Type     QuestionType `json:"type" bson:"type"`
	Order    int          `json:"order" bson:"order"`
	Title    string       `json:"title" bson:"title"`
	Prompt   string       `json:"prompt" bson:"prompt"`
	Required bool         `json:"required" bson:"required"`
	ImageURL string       `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Settings Settings     `json:"settings" bson:"settings"`
}

// Form is a persistent form template composed in the editor
type Form struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	Title          string     `json:"title" bson:"title"`
	Description    string     `json:"description" bson:"description"`
	HeaderImageURL string     `json:"headerImageUrl,omitempty" bson:"headerImageUrl,omitempty"`
	Theme          Theme      `json:"theme" bson:"theme"`
	Questions      []Question `json:"questions" bson:"questions"`
	CreatedAt      time.Time  `json:"createdAt" bson:"createdAt"`
}

// Question returns the question with the given id, or nil.
func (f *Form) Question(id string) *Question {
	for i := range f.Questions {
		if f.Questions[i].ID == id {
			return &f.Questions[i]
		}
	}
	return nil
}
