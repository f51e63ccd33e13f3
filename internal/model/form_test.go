package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func sampleForm() *Form {
	return &Form{
		ID:             "64f1c0ffee0000000000aaaa",
		Title:          "Geography Quiz",
		Description:    "Three question kinds",
		HeaderImageURL: "/uploads/header.png",
		Theme:          Theme{Accent: "#2563eb", Font: "Inter"},
		CreatedAt:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Questions: []Question{
			{
				ID: "q-cat", Type: QuestionCategorize, Order: 1, Title: "Sort", Required: true,
				Settings: Settings{Categorize: &CategorizeSettings{
					Categories: []Category{{Key: "land", Label: "Land"}, {Key: "sea", Label: "Sea"}},
					Items: []CategorizeItem{
						{ID: "i1", Label: "Alps", CorrectCategoryKey: "land"},
						{ID: "i2", Label: "Baltic", CorrectCategoryKey: "sea"},
					},
				}},
			},
			{
				ID: "q-cloze", Type: QuestionCloze, Order: 2, Title: "Fill in", Required: true,
				Settings: Settings{Cloze: &ClozeSettings{
					Text: "The __1__ rises in the __2__.",
					Blanks: []ClozeBlank{
						{Key: "1", Answer: "sun"},
						{Key: "2", Answer: "east", Options: []string{"east", "west"}},
					},
				}},
			},
			{
				ID: "q-comp", Type: QuestionComprehension, Order: 3, Title: "Read", Required: false,
				Settings: Settings{Comprehension: &ComprehensionSettings{
					Passage: "Rivers flow downhill.",
					Questions: []SubQuestion{
						{QID: "sq1", QuestionText: "Which way?", Kind: SubQuestionMCQ, Options: []string{"Up", "Down"}, Answer: "Down"},
						{QID: "sq2", QuestionText: "Name one.", Kind: SubQuestionShort},
					},
				}},
			},
		},
	}
}

func TestFormJSONRoundTrip(t *testing.T) {
	form := sampleForm()

	data, err := json.Marshal(form)
	require.NoError(t, err)

	var decoded Form
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *form, decoded)

	again, err := json.Marshal(&decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestFormBSONRoundTrip(t *testing.T) {
	form := sampleForm()

	data, err := bson.Marshal(form)
	require.NoError(t, err)

	var decoded Form
	require.NoError(t, bson.Unmarshal(data, &decoded))

	// BSON stores times at millisecond precision; the sample has none to lose
	assert.Equal(t, form.Questions, decoded.Questions)
	assert.Equal(t, form.Title, decoded.Title)
	assert.Equal(t, form.Theme, decoded.Theme)
	assert.True(t, form.CreatedAt.Equal(decoded.CreatedAt))
}

func TestFormQuestionLookup(t *testing.T) {
	form := sampleForm()

	q := form.Question("q-cloze")
	require.NotNil(t, q)
	assert.Equal(t, QuestionCloze, q.Type)

	assert.Nil(t, form.Question("missing"))
}
