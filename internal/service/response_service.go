package service

import (
	"context"

	"formforge/internal/capture"
	"formforge/internal/model"
	"formforge/internal/repository"
)

// ResponseService handles submission and listing of form responses
type ResponseService struct {
	responseRepo repository.ResponseRepo
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
	}
}

// Submit packages the answer set with its submission metadata and stores it.
// No completeness or referential check runs: unanswered required questions and
// keys that no longer match the live form are stored as-is.
func (s *ResponseService) Submit(ctx context.Context, formID string, answers capture.AnswerSet, meta model.SubmissionMeta) (*model.FormResponse, error) {
	resp := capture.NewSubmission(formID, answers, meta)
	if err := s.responseRepo.Create(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListByForm retrieves a form's responses, newest submission first
func (s *ResponseService) ListByForm(ctx context.Context, formID string) ([]*model.FormResponse, error) {
	return s.responseRepo.ListByForm(ctx, formID)
}
