package service

import (
	"context"
	"log"

	"formforge/internal/builder"
	"formforge/internal/cache"
	"formforge/internal/model"
	"formforge/internal/repository"
)

// FormService handles form CRUD and editor transitions. The whole aggregate
// is loaded, mutated, and written back on every edit; two concurrent editors
// saving the same form resolve by last-write-wins.
type FormService struct {
	formRepo  repository.FormRepo
	formCache cache.FormCache
}

// NewFormService creates a new form service
func NewFormService(formRepo repository.FormRepo, formCache cache.FormCache) *FormService {
	return &FormService{
		formRepo:  formRepo,
		formCache: formCache,
	}
}

// Create persists a new form
func (s *FormService) Create(ctx context.Context, form *model.Form) (*model.Form, error) {
	if _, err := s.formRepo.Create(ctx, form); err != nil {
		return nil, err
	}
	s.cacheSet(ctx, form)
	return form, nil
}

// GetByID retrieves a form, reading through the cache. Returns (nil, nil) if
// the form does not exist.
func (s *FormService) GetByID(ctx context.Context, id string) (*model.Form, error) {
	if form, err := s.formCache.Get(ctx, id); err == nil && form != nil {
		return form, nil
	}

	form, err := s.formRepo.GetByID(ctx, id)
	if err != nil || form == nil {
		return form, err
	}
	s.cacheSet(ctx, form)
	return form, nil
}

// Update replaces the stored form wholesale
func (s *FormService) Update(ctx context.Context, form *model.Form) error {
	if err := s.formRepo.Update(ctx, form); err != nil {
		return err
	}
	s.cacheSet(ctx, form)
	return nil
}

// Delete removes a form
func (s *FormService) Delete(ctx context.Context, id string) error {
	if err := s.formRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.formCache.Invalidate(ctx, id); err != nil {
		log.Printf("form cache invalidate %s: %v", id, err)
	}
	return nil
}

// List retrieves all forms, newest first
func (s *FormService) List(ctx context.Context) ([]*model.Form, error) {
	return s.formRepo.List(ctx)
}

// AddQuestion appends a question of the given type and saves the form.
// Returns (nil, nil) if the form does not exist.
func (s *FormService) AddQuestion(ctx context.Context, formID string, t model.QuestionType) (*model.Form, error) {
	return s.edit(ctx, formID, func(f *model.Form) error {
		_, err := builder.AddQuestion(f, t)
		return err
	})
}

// RemoveQuestion removes a question by id and saves the form
func (s *FormService) RemoveQuestion(ctx context.Context, formID, questionID string) (*model.Form, error) {
	return s.edit(ctx, formID, func(f *model.Form) error {
		builder.RemoveQuestion(f, questionID)
		return nil
	})
}

// PatchQuestion shallow-merges envelope fields and saves the form
func (s *FormService) PatchQuestion(ctx context.Context, formID, questionID string, patch builder.FieldPatch) (*model.Form, error) {
	return s.edit(ctx, formID, func(f *model.Form) error {
		builder.UpdateField(f, questionID, patch)
		return nil
	})
}

// PatchSettings shallow-merges the current variant's settings and saves
func (s *FormService) PatchSettings(ctx context.Context, formID, questionID string, patch builder.SettingsPatch) (*model.Form, error) {
	return s.edit(ctx, formID, func(f *model.Form) error {
		builder.UpdateSettings(f, questionID, patch)
		return nil
	})
}

// ChangeQuestionType swaps a question's variant, resetting its settings
func (s *FormService) ChangeQuestionType(ctx context.Context, formID, questionID string, t model.QuestionType) (*model.Form, error) {
	return s.edit(ctx, formID, func(f *model.Form) error {
		return builder.ChangeType(f, questionID, t)
	})
}

// ReorderQuestions moves a question between positions and saves
func (s *FormService) ReorderQuestions(ctx context.Context, formID string, from, to int) (*model.Form, error) {
	return s.edit(ctx, formID, func(f *model.Form) error {
		builder.Reorder(f, from, to)
		return nil
	})
}

// ApplyEntryOp mutates a nested collection (categories, items, blanks,
// sub-questions) of one question and saves. An op against a missing question
// id is a no-op save.
func (s *FormService) ApplyEntryOp(ctx context.Context, formID, questionID string, op builder.EntryOp) (*model.Form, error) {
	return s.edit(ctx, formID, func(f *model.Form) error {
		q := f.Question(questionID)
		if q == nil {
			return nil
		}
		return builder.Apply(q, op)
	})
}

func (s *FormService) edit(ctx context.Context, formID string, mutate func(*model.Form) error) (*model.Form, error) {
	form, err := s.GetByID(ctx, formID)
	if err != nil || form == nil {
		return nil, err
	}
	if err := mutate(form); err != nil {
		return nil, err
	}
	if err := s.Update(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// cacheSet is best-effort: a cache failure never fails the request.
func (s *FormService) cacheSet(ctx context.Context, form *model.Form) {
	if err := s.formCache.Set(ctx, form); err != nil {
		log.Printf("form cache set %s: %v", form.ID, err)
	}
}
