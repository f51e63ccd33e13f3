package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanForm(t *testing.T) {
	form := sampleForm()
	assert.Empty(t, form.Validate())
}

func TestValidateEmptyTitle(t *testing.T) {
	form := sampleForm()
	form.Title = ""

	issues := form.Validate()
	require.Len(t, issues, 1)
	assert.Equal(t, "title", issues[0].Field)
}

func TestValidateCategorize(t *testing.T) {
	form := &Form{
		Title: "t",
		Questions: []Question{{
			ID: "q1", Type: QuestionCategorize,
			Settings: Settings{Categorize: &CategorizeSettings{
				Categories: []Category{{Key: "a"}, {Key: "a"}},
				Items:      []CategorizeItem{{ID: "i1", CorrectCategoryKey: "gone"}},
			}},
		}},
	}

	issues := form.Validate()
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "duplicate category key")
	assert.Contains(t, issues[1].Message, "missing category")
}

func TestValidateCloze(t *testing.T) {
	form := &Form{
		Title: "t",
		Questions: []Question{{
			ID: "q1", Type: QuestionCloze,
			Settings: Settings{Cloze: &ClozeSettings{
				Text:   "A __1__ and __3__.",
				Blanks: []ClozeBlank{{Key: "1"}, {Key: "2"}},
			}},
		}},
	}

	issues := form.Validate()
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "__3__")
	assert.Contains(t, issues[1].Message, `blank "2" is never referenced`)
}

func TestValidateComprehension(t *testing.T) {
	form := &Form{
		Title: "t",
		Questions: []Question{{
			ID: "q1", Type: QuestionComprehension,
			Settings: Settings{Comprehension: &ComprehensionSettings{
				Questions: []SubQuestion{
					{QID: "s1", Kind: SubQuestionMCQ},
					{QID: "s1", Kind: SubQuestionShort},
				},
			}},
		}},
	}

	issues := form.Validate()
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "no options")
	assert.Contains(t, issues[1].Message, "duplicate sub-question")
}

func TestValidateMissingPayloadAndDuplicateIDs(t *testing.T) {
	form := &Form{
		Title: "t",
		Questions: []Question{
			{ID: "q1", Type: QuestionCloze},
			{ID: "q1", Type: QuestionType("mystery")},
		},
	}

	issues := form.Validate()
	require.Len(t, issues, 3)
	assert.Equal(t, "settings.cloze", issues[0].Field)
	assert.Equal(t, "id", issues[1].Field)
	assert.Equal(t, "type", issues[2].Field)
}
