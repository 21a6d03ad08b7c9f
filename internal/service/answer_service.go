package service

import (
	"context"

	"edu_assessment_backend/internal/model"
	"edu_assessment_backend/internal/repository"
	"edu_assessment_backend/internal/util"
)

type AnswerService struct {
	Repo         *repository.AnswerRepository
	QuestionRepo *repository.QuestionRepository
	cache        *DetailCache
}

func NewAnswerService(
	repo *repository.AnswerRepository,
	questionRepo *repository.QuestionRepository,
	cache *DetailCache,
) *AnswerService {
	return &AnswerService{Repo: repo, QuestionRepo: questionRepo, cache: cache}
}

type AnswerTranslationRequest struct {
	Locale      string `json:"locale" binding:"required"`
	Explanation string `json:"explanation" binding:"required"`
}

type CreateAnswerRequest struct {
	Explanation     string                     `json:"explanation" binding:"required"`
	CorrectOptionID *string                    `json:"correctOptionId"`
	Translations    []AnswerTranslationRequest `json:"translations" binding:"omitempty,dive"`
}

// CreateAnswer attaches the canonical answer to a question. A multiple-choice
// question requires a correct option that belongs to it; an open question
// must not name one. A question carries at most one answer.
func (s *AnswerService) CreateAnswer(ctx context.Context, questionID string, req CreateAnswerRequest) (*model.Answer, error) {
	q, err := s.QuestionRepo.FindQuestionByID(ctx, questionID)
	if err != nil {
		return nil, util.NewRepositoryError("question lookup", err)
	}
	if q == nil {
		return nil, util.NewNotFoundError("question")
	}

	existing, err := s.Repo.FindAnswerByQuestionID(ctx, questionID)
	if err != nil {
		return nil, util.NewRepositoryError("answer lookup", err)
	}
	if existing != nil {
		return nil, util.NewInvalidInputError("questionId", "unique", "question already has an answer")
	}

	switch q.Type {
	case model.QuestionMultipleChoice:
		if req.CorrectOptionID == nil {
			return nil, util.NewInvalidInputError("correctOptionId", "required", "a multiple-choice answer must reference the correct option")
		}
		opt, err := s.QuestionRepo.FindOptionByID(ctx, *req.CorrectOptionID)
		if err != nil {
			return nil, util.NewRepositoryError("option lookup", err)
		}
		if opt == nil || opt.QuestionID != questionID {
			return nil, util.NewInvalidInputError("correctOptionId", "ownership", "correct option does not belong to this question")
		}
	case model.QuestionOpen:
		if req.CorrectOptionID != nil {
			return nil, util.NewInvalidInputError("correctOptionId", "kind", "an open question has no correct option")
		}
	}

	translations := make([]model.AnswerTranslation, 0, len(req.Translations))
	for _, t := range req.Translations {
		translations = append(translations, model.AnswerTranslation{
			Locale:      t.Locale,
			Explanation: t.Explanation,
		})
	}

	a := &model.Answer{
		Explanation:     req.Explanation,
		QuestionID:      questionID,
		CorrectOptionID: req.CorrectOptionID,
		Translations:    translations,
	}
	if err := s.Repo.CreateAnswer(ctx, a); err != nil {
		return nil, util.NewRepositoryError("answer create", err)
	}
	s.cache.Invalidate(ctx, q.AssessmentID)
	return a, nil
}

func (s *AnswerService) GetAnswerByQuestion(ctx context.Context, questionID string) (*model.Answer, error) {
	q, err := s.QuestionRepo.FindQuestionByID(ctx, questionID)
	if err != nil {
		return nil, util.NewRepositoryError("question lookup", err)
	}
	if q == nil {
		return nil, util.NewNotFoundError("question")
	}

	a, err := s.Repo.FindAnswerByQuestionID(ctx, questionID)
	if err != nil {
		return nil, util.NewRepositoryError("answer lookup", err)
	}
	if a == nil {
		return nil, util.NewNotFoundError("answer")
	}
	return a, nil
}
