package service

import (
	"context"

	"edu_assessment_backend/internal/model"
	"edu_assessment_backend/internal/repository"
	"edu_assessment_backend/internal/util"
)

type ArgumentService struct {
	Repo           *repository.ArgumentRepository
	AssessmentRepo *repository.AssessmentRepository
	cache          *DetailCache
}

func NewArgumentService(
	repo *repository.ArgumentRepository,
	assessmentRepo *repository.AssessmentRepository,
	cache *DetailCache,
) *ArgumentService {
	return &ArgumentService{Repo: repo, AssessmentRepo: assessmentRepo, cache: cache}
}

type CreateArgumentRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  *string `json:"description"`
	AssessmentID string  `json:"assessmentId" binding:"required"`
}

func (s *ArgumentService) CreateArgument(ctx context.Context, req CreateArgumentRequest) (*model.Argument, error) {
	assessment, err := s.AssessmentRepo.FindAssessmentByID(ctx, req.AssessmentID)
	if err != nil {
		return nil, util.NewRepositoryError("assessment lookup", err)
	}
	if assessment == nil {
		return nil, util.NewNotFoundError("assessment")
	}

	a := &model.Argument{
		Title:        req.Title,
		Description:  req.Description,
		AssessmentID: req.AssessmentID,
	}
	if err := s.Repo.CreateArgument(ctx, a); err != nil {
		return nil, util.NewRepositoryError("argument create", err)
	}
	s.cache.Invalidate(ctx, req.AssessmentID)
	return a, nil
}

func (s *ArgumentService) GetArgument(ctx context.Context, id string) (*model.Argument, error) {
	a, err := s.Repo.FindArgumentByID(ctx, id)
	if err != nil {
		return nil, util.NewRepositoryError("argument lookup", err)
	}
	if a == nil {
		return nil, util.NewNotFoundError("argument")
	}
	return a, nil
}

func (s *ArgumentService) ListArgumentsByAssessment(ctx context.Context, assessmentID string) ([]model.Argument, error) {
	assessment, err := s.AssessmentRepo.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, util.NewRepositoryError("assessment lookup", err)
	}
	if assessment == nil {
		return nil, util.NewNotFoundError("assessment")
	}

	args, err := s.Repo.FindArgumentsByAssessmentID(ctx, assessmentID)
	if err != nil {
		return nil, util.NewRepositoryError("argument list", err)
	}
	return args, nil
}
