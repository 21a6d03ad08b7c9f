package repository

import (
	"context"
	"errors"

	"edu_assessment_backend/internal/model"

	"gorm.io/gorm"
)

type ArgumentRepository struct {
	DB *gorm.DB
}

func NewArgumentRepository(db *gorm.DB) *ArgumentRepository {
	return &ArgumentRepository{DB: db}
}

func (r *ArgumentRepository) FindArgumentsByAssessmentID(ctx context.Context, assessmentID string) ([]model.Argument, error) {
	var args []model.Argument
	err := r.DB.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("created_at asc, id asc").
		Find(&args).Error
	return args, err
}

func (r *ArgumentRepository) FindArgumentByID(ctx context.Context, id string) (*model.Argument, error) {
	var a model.Argument
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArgumentRepository) CreateArgument(ctx context.Context, a *model.Argument) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *ArgumentRepository) DeleteArgument(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Argument{}).Error
}
