package service

import (
	"context"

	"edu_assessment_backend/internal/model"
	"edu_assessment_backend/internal/repository"
	"edu_assessment_backend/internal/util"
)

type AssessmentService struct {
	Repo  *repository.AssessmentRepository
	cache *DetailCache
}

func NewAssessmentService(repo *repository.AssessmentRepository, cache *DetailCache) *AssessmentService {
	return &AssessmentService{Repo: repo, cache: cache}
}

type CreateAssessmentRequest struct {
	Slug               string  `json:"slug" binding:"required"`
	Title              string  `json:"title" binding:"required"`
	Description        *string `json:"description"`
	Type               string  `json:"type" binding:"required,oneof=QUIZ TIMED_EXAM OPEN_EXAM"`
	QuizPosition       *string `json:"quizPosition" binding:"omitempty,oneof=BEFORE_LESSON AFTER_LESSON"`
	PassingScore       *int    `json:"passingScore" binding:"omitempty,min=0,max=100"`
	TimeLimitInMinutes *int    `json:"timeLimitInMinutes" binding:"omitempty,min=1"`
	RandomizeQuestions bool    `json:"randomizeQuestions"`
	RandomizeOptions   bool    `json:"randomizeOptions"`
	LessonID           *string `json:"lessonId"`
}

// validateKindFields keeps the kind invariant at the write path: lesson
// linkage and position for quizzes only, a time limit for timed exams only.
func (req *CreateAssessmentRequest) validateKindFields() error {
	kind := model.AssessmentType(req.Type)
	if kind != model.AssessmentQuiz {
		if req.LessonID != nil {
			return util.NewInvalidInputError("lessonId", "kind", "only a QUIZ may reference a lesson")
		}
		if req.QuizPosition != nil {
			return util.NewInvalidInputError("quizPosition", "kind", "only a QUIZ may carry a quiz position")
		}
	}
	if kind != model.AssessmentTimedExam && req.TimeLimitInMinutes != nil {
		return util.NewInvalidInputError("timeLimitInMinutes", "kind", "only a TIMED_EXAM may carry a time limit")
	}
	return nil
}

func (s *AssessmentService) CreateAssessment(ctx context.Context, req CreateAssessmentRequest) (*model.Assessment, error) {
	if err := req.validateKindFields(); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindAssessmentBySlug(ctx, req.Slug)
	if err != nil {
		return nil, util.NewRepositoryError("assessment lookup", err)
	}
	if existing != nil {
		return nil, util.NewInvalidInputError("slug", "unique", "an assessment with this slug already exists")
	}

	var quizPosition *model.QuizPosition
	if req.QuizPosition != nil {
		p := model.QuizPosition(*req.QuizPosition)
		quizPosition = &p
	}

	a := &model.Assessment{
		Slug:               req.Slug,
		Title:              req.Title,
		Description:        req.Description,
		Type:               model.AssessmentType(req.Type),
		QuizPosition:       quizPosition,
		PassingScore:       req.PassingScore,
		TimeLimitInMinutes: req.TimeLimitInMinutes,
		RandomizeQuestions: req.RandomizeQuestions,
		RandomizeOptions:   req.RandomizeOptions,
		LessonID:           req.LessonID,
	}
	if err := s.Repo.CreateAssessment(ctx, a); err != nil {
		return nil, util.NewRepositoryError("assessment create", err)
	}
	return a, nil
}

func (s *AssessmentService) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	a, err := s.Repo.FindAssessmentByID(ctx, id)
	if err != nil {
		return nil, util.NewRepositoryError("assessment lookup", err)
	}
	if a == nil {
		return nil, util.NewNotFoundError("assessment")
	}
	return a, nil
}

func (s *AssessmentService) ListAssessments(ctx context.Context, page, limit int) ([]model.Assessment, int64, error) {
	as, total, err := s.Repo.ListAssessments(ctx, page, limit)
	if err != nil {
		return nil, 0, util.NewRepositoryError("assessment list", err)
	}
	return as, total, nil
}

func (s *AssessmentService) DeleteAssessment(ctx context.Context, id string) error {
	a, err := s.Repo.FindAssessmentByID(ctx, id)
	if err != nil {
		return util.NewRepositoryError("assessment lookup", err)
	}
	if a == nil {
		return util.NewNotFoundError("assessment")
	}
	if err := s.Repo.DeleteAssessment(ctx, id); err != nil {
		return util.NewRepositoryError("assessment delete", err)
	}
	s.cache.Invalidate(ctx, id)
	return nil
}
