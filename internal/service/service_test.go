package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"formforge/internal/builder"
	"formforge/internal/capture"
	"formforge/internal/model"
	"formforge/internal/repository"
)

// memFormRepo is an in-memory stand-in for the Mongo form repository
type memFormRepo struct {
	forms  map[string]*model.Form
	nextID int
}

func newMemFormRepo() *memFormRepo {
	return &memFormRepo{forms: map[string]*model.Form{}}
}

// clone round-trips through bson so the stored form shares nothing with the
// caller's, matching what a real repository write would do. A shallow copy of
// the Questions slice would still share the Settings pointers, letting an
// in-place mutation leak into the store without an Update.
func (r *memFormRepo) clone(f *model.Form) *model.Form {
	data, err := bson.Marshal(f)
	if err != nil {
		panic(err)
	}
	var cp model.Form
	if err := bson.Unmarshal(data, &cp); err != nil {
		panic(err)
	}
	return &cp
}

func (r *memFormRepo) Create(ctx context.Context, form *model.Form) (string, error) {
	r.nextID++
	form.ID = fmt.Sprintf("form-%d", r.nextID)
	r.forms[form.ID] = r.clone(form)
	return form.ID, nil
}

func (r *memFormRepo) GetByID(ctx context.Context, id string) (*model.Form, error) {
	f, ok := r.forms[id]
	if !ok {
		return nil, nil
	}
	return r.clone(f), nil
}

func (r *memFormRepo) Update(ctx context.Context, form *model.Form) error {
	if _, ok := r.forms[form.ID]; !ok {
		return repository.ErrNotFound
	}
	r.forms[form.ID] = r.clone(form)
	return nil
}

func (r *memFormRepo) Delete(ctx context.Context, id string) error {
	delete(r.forms, id)
	return nil
}

func (r *memFormRepo) List(ctx context.Context) ([]*model.Form, error) {
	var out []*model.Form
	for _, f := range r.forms {
		out = append(out, r.clone(f))
	}
	return out, nil
}

// memResponseRepo appends submissions and lists them newest-first
type memResponseRepo struct {
	responses []*model.FormResponse
}

func (r *memResponseRepo) Create(ctx context.Context, resp *model.FormResponse) error {
	resp.ID = fmt.Sprintf("resp-%d", len(r.responses)+1)
	r.responses = append(r.responses, resp)
	return nil
}

func (r *memResponseRepo) ListByForm(ctx context.Context, formID string) ([]*model.FormResponse, error) {
	var out []*model.FormResponse
	for i := len(r.responses) - 1; i >= 0; i-- {
		if r.responses[i].FormID == formID {
			out = append(out, r.responses[i])
		}
	}
	return out, nil
}

// noopCache always misses so the service hits the repo
type noopCache struct{}

func (noopCache) Set(ctx context.Context, form *model.Form) error         { return nil }
func (noopCache) Get(ctx context.Context, id string) (*model.Form, error) { return nil, nil }
func (noopCache) Invalidate(ctx context.Context, id string) error         { return nil }

func newFormService() (*FormService, *memFormRepo) {
	repo := newMemFormRepo()
	return NewFormService(repo, noopCache{}), repo
}

func TestFormServiceCRUD(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFormService()

	form, err := svc.Create(ctx, builder.NewForm())
	require.NoError(t, err)
	require.NotEmpty(t, form.ID)

	got, err := svc.GetByID(ctx, form.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Untitled Form", got.Title)

	got.Title = "Renamed"
	require.NoError(t, svc.Update(ctx, got))

	got, err = svc.GetByID(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	require.NoError(t, svc.Delete(ctx, form.ID))
	got, err = svc.GetByID(ctx, form.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateMissingFormReportsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFormService()

	form := builder.NewForm()
	form.ID = "nope"
	assert.ErrorIs(t, svc.Update(ctx, form), repository.ErrNotFound)
}

func TestEditOpsPersistAcrossLoads(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFormService()

	form, err := svc.Create(ctx, builder.NewForm())
	require.NoError(t, err)

	form, err = svc.AddQuestion(ctx, form.ID, model.QuestionCategorize)
	require.NoError(t, err)
	require.Len(t, form.Questions, 1)
	qid := form.Questions[0].ID

	title := "Sort these"
	form, err = svc.PatchQuestion(ctx, form.ID, qid, builder.FieldPatch{Title: &title})
	require.NoError(t, err)

	form, err = svc.ApplyEntryOp(ctx, form.ID, qid, builder.EntryOp{List: builder.ListCategories, Op: builder.OpAppend})
	require.NoError(t, err)

	reloaded, err := svc.GetByID(ctx, form.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Questions, 1)
	assert.Equal(t, "Sort these", reloaded.Questions[0].Title)
	assert.Len(t, reloaded.Questions[0].Settings.Categorize.Categories, 3)
}

func TestLoadedFormIsIsolatedFromStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFormService()

	form, err := svc.Create(ctx, builder.NewForm())
	require.NoError(t, err)
	form, err = svc.AddQuestion(ctx, form.ID, model.QuestionCategorize)
	require.NoError(t, err)

	// mutate a loaded copy's nested settings without calling Update
	loaded, err := svc.GetByID(ctx, form.ID)
	require.NoError(t, err)
	loaded.Questions[0].Settings.Categorize.Categories[0].Label = "Leaked"

	reloaded, err := svc.GetByID(ctx, form.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Questions[0].Settings.Categorize.Categories[0].Label)
}

func TestEditOpsOnMissingFormReturnNil(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFormService()

	form, err := svc.AddQuestion(ctx, "ghost", model.QuestionCloze)
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestSubmitAndListScenario(t *testing.T) {
	ctx := context.Background()
	formSvc, _ := newFormService()
	respRepo := &memResponseRepo{}
	respSvc := NewResponseService(respRepo)

	// Build the form: title "Quiz", one comprehension question with passage
	// "Text" and one mcq sub-question with options A and B.
	form := builder.NewForm()
	form.Title = "Quiz"
	form, err := formSvc.Create(ctx, form)
	require.NoError(t, err)

	form, err = formSvc.AddQuestion(ctx, form.ID, model.QuestionComprehension)
	require.NoError(t, err)
	questionID := form.Questions[0].ID
	subQID := form.Questions[0].Settings.Comprehension.Questions[0].QID

	passage := "Text"
	form, err = formSvc.PatchSettings(ctx, form.ID, questionID, builder.SettingsPatch{
		Comprehension: &builder.ComprehensionPatch{Passage: &passage},
	})
	require.NoError(t, err)
	assert.Equal(t, "Text", form.Questions[0].Settings.Comprehension.Passage)

	kind := model.SubQuestionMCQ
	opts := []string{"A", "B"}
	form, err = formSvc.ApplyEntryOp(ctx, form.ID, questionID, builder.EntryOp{
		List: builder.ListQuestions, Op: builder.OpEdit, Key: subQID,
		Patch: builder.EntryPatch{Kind: &kind, Options: &opts},
	})
	require.NoError(t, err)

	// Fill: select "B" for the sub-question and submit.
	answers := capture.AnswerSet{}
	answers.Record(questionID, subQID, "B")

	meta := model.SubmissionMeta{UserAgent: "test-agent", IP: "127.0.0.1"}
	stored, err := respSvc.Submit(ctx, form.ID, answers, meta)
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)

	assert.Equal(t, model.AnswerValue{subQID: "B"}, stored.Answers[questionID])
	assert.Len(t, stored.Answers, 1)

	listed, err := respSvc.ListByForm(ctx, form.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, meta, listed[0].Meta)
}
