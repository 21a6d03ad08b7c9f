package repository

import (
	"context"
	"errors"

	"edu_assessment_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// FindAnswersByQuestionIDs resolves the canonical answers of a set of
// questions in a single query, translations preloaded in insertion order.
// Questions without an answer are simply missing from the map.
func (r *AnswerRepository) FindAnswersByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]*model.Answer, error) {
	result := make(map[string]*model.Answer, len(questionIDs))
	if len(questionIDs) == 0 {
		return result, nil
	}

	var answers []model.Answer
	err := r.DB.WithContext(ctx).
		Where("question_id IN ?", questionIDs).
		Preload("Translations", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_translations.id asc")
		}).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}

	for i := range answers {
		result[answers[i].QuestionID] = &answers[i]
	}
	return result, nil
}

func (r *AnswerRepository) FindAnswerByQuestionID(ctx context.Context, questionID string) (*model.Answer, error) {
	var a model.Answer
	err := r.DB.WithContext(ctx).
		Where("question_id = ?", questionID).
		Preload("Translations", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_translations.id asc")
		}).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnswerRepository) CreateAnswer(ctx context.Context, a *model.Answer) error {
	return r.DB.WithContext(ctx).Create(a).Error
}
