package service

import (
	"context"

	"edu_assessment_backend/internal/model"
	"edu_assessment_backend/internal/repository"
	"edu_assessment_backend/internal/util"
)

type QuestionService struct {
	Repo           *repository.QuestionRepository
	AssessmentRepo *repository.AssessmentRepository
	ArgumentRepo   *repository.ArgumentRepository
	cache          *DetailCache
}

func NewQuestionService(
	repo *repository.QuestionRepository,
	assessmentRepo *repository.AssessmentRepository,
	argumentRepo *repository.ArgumentRepository,
	cache *DetailCache,
) *QuestionService {
	return &QuestionService{
		Repo:           repo,
		AssessmentRepo: assessmentRepo,
		ArgumentRepo:   argumentRepo,
		cache:          cache,
	}
}

type CreateQuestionRequest struct {
	Text         string  `json:"text" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=MULTIPLE_CHOICE OPEN"`
	AssessmentID string  `json:"assessmentId" binding:"required"`
	ArgumentID   *string `json:"argumentId"`
}

func (s *QuestionService) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*model.Question, error) {
	assessment, err := s.AssessmentRepo.FindAssessmentByID(ctx, req.AssessmentID)
	if err != nil {
		return nil, util.NewRepositoryError("assessment lookup", err)
	}
	if assessment == nil {
		return nil, util.NewNotFoundError("assessment")
	}

	if req.ArgumentID != nil {
		arg, err := s.ArgumentRepo.FindArgumentByID(ctx, *req.ArgumentID)
		if err != nil {
			return nil, util.NewRepositoryError("argument lookup", err)
		}
		if arg == nil {
			return nil, util.NewNotFoundError("argument")
		}
		if arg.AssessmentID != req.AssessmentID {
			return nil, util.NewInvalidInputError("argumentId", "ownership", "argument belongs to a different assessment")
		}
	}

	q := &model.Question{
		Text:         req.Text,
		Type:         model.QuestionType(req.Type),
		AssessmentID: req.AssessmentID,
		ArgumentID:   req.ArgumentID,
	}
	if err := s.Repo.CreateQuestion(ctx, q); err != nil {
		return nil, util.NewRepositoryError("question create", err)
	}
	s.cache.Invalidate(ctx, req.AssessmentID)
	return q, nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*model.Question, error) {
	q, err := s.Repo.FindQuestionByID(ctx, id)
	if err != nil {
		return nil, util.NewRepositoryError("question lookup", err)
	}
	if q == nil {
		return nil, util.NewNotFoundError("question")
	}
	return q, nil
}

func (s *QuestionService) ListQuestionsByAssessment(ctx context.Context, assessmentID string) ([]model.Question, error) {
	assessment, err := s.AssessmentRepo.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, util.NewRepositoryError("assessment lookup", err)
	}
	if assessment == nil {
		return nil, util.NewNotFoundError("assessment")
	}

	qs, err := s.Repo.FindQuestionsWithOptionsByAssessmentID(ctx, assessmentID)
	if err != nil {
		return nil, util.NewRepositoryError("question list", err)
	}
	return qs, nil
}

type CreateOptionRequest struct {
	Text string `json:"text" binding:"required"`
}

func (s *QuestionService) CreateOption(ctx context.Context, questionID string, req CreateOptionRequest) (*model.QuestionOption, error) {
	q, err := s.Repo.FindQuestionByID(ctx, questionID)
	if err != nil {
		return nil, util.NewRepositoryError("question lookup", err)
	}
	if q == nil {
		return nil, util.NewNotFoundError("question")
	}

	opt := &model.QuestionOption{
		Text:       req.Text,
		QuestionID: questionID,
	}
	if err := s.Repo.CreateOption(ctx, opt); err != nil {
		return nil, util.NewRepositoryError("option create", err)
	}
	s.cache.Invalidate(ctx, q.AssessmentID)
	return opt, nil
}

func (s *QuestionService) ListOptions(ctx context.Context, questionID string) ([]model.QuestionOption, error) {
	q, err := s.Repo.FindQuestionByID(ctx, questionID)
	if err != nil {
		return nil, util.NewRepositoryError("question lookup", err)
	}
	if q == nil {
		return nil, util.NewNotFoundError("question")
	}
	opts, err := s.Repo.ListOptionsByQuestionID(ctx, questionID)
	if err != nil {
		return nil, util.NewRepositoryError("option list", err)
	}
	return opts, nil
}
