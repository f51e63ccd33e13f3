package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategorize(t *testing.T) {
	s := DefaultCategorize()

	require.Len(t, s.Categories, 2)
	assert.Equal(t, "cat1", s.Categories[0].Key)
	assert.Equal(t, "cat2", s.Categories[1].Key)

	require.Len(t, s.Items, 1)
	assert.Equal(t, "i1", s.Items[0].ID)
	assert.Equal(t, "cat1", s.Items[0].CorrectCategoryKey)
}

func TestDefaultCloze(t *testing.T) {
	s := DefaultCloze()

	assert.Empty(t, s.Text)
	require.Len(t, s.Blanks, 2)
	assert.Equal(t, "1", s.Blanks[0].Key)
	assert.Equal(t, "2", s.Blanks[1].Key)
}

func TestDefaultComprehension(t *testing.T) {
	s := DefaultComprehension()

	assert.Empty(t, s.Passage)
	require.Len(t, s.Questions, 1)
	assert.Equal(t, SubQuestionShort, s.Questions[0].Kind)
}

func TestDefaultSettings(t *testing.T) {
	s, err := DefaultSettings(QuestionCategorize)
	require.NoError(t, err)
	assert.NotNil(t, s.Categorize)
	assert.Nil(t, s.Cloze)
	assert.Nil(t, s.Comprehension)

	s, err = DefaultSettings(QuestionCloze)
	require.NoError(t, err)
	assert.NotNil(t, s.Cloze)

	s, err = DefaultSettings(QuestionComprehension)
	require.NoError(t, err)
	assert.NotNil(t, s.Comprehension)

	_, err = DefaultSettings(QuestionType("essay"))
	assert.Error(t, err)
}
