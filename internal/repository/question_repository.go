package repository

import (
	"context"
	"errors"

	"edu_assessment_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindQuestionsWithOptionsByAssessmentID loads every question of an
// assessment with its options preloaded in one batched query. Storage order
// is preserved: questions and options come back in creation order.
func (r *QuestionRepository) FindQuestionsWithOptionsByAssessmentID(ctx context.Context, assessmentID string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.created_at asc, question_options.id asc")
		}).
		Order("created_at asc, id asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindQuestionByID(ctx context.Context, id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.created_at asc, question_options.id asc")
		}).
		Where("id = ?", id).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) CreateQuestion(ctx context.Context, q *model.Question) error {
	return r.DB.WithContext(ctx).Create(q).Error
}

func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Question{}).Error
}

func (r *QuestionRepository) CreateOption(ctx context.Context, opt *model.QuestionOption) error {
	return r.DB.WithContext(ctx).Create(opt).Error
}

func (r *QuestionRepository) ListOptionsByQuestionID(ctx context.Context, questionID string) ([]model.QuestionOption, error) {
	var opts []model.QuestionOption
	err := r.DB.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at asc, id asc").
		Find(&opts).Error
	return opts, err
}

func (r *QuestionRepository) FindOptionByID(ctx context.Context, id string) (*model.QuestionOption, error) {
	var opt model.QuestionOption
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&opt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &opt, nil
}
