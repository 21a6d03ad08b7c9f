package repository

import (
	"context"
	"errors"

	"edu_assessment_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// FindAssessmentByID returns (nil, nil) when no row matches, so callers can
// tell absence apart from a storage failure.
func (r *AssessmentRepository) FindAssessmentByID(ctx context.Context, id string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) FindAssessmentBySlug(ctx context.Context, slug string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.WithContext(ctx).Where("slug = ?", slug).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) CreateAssessment(ctx context.Context, a *model.Assessment) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *AssessmentRepository) ListAssessments(ctx context.Context, page, limit int) ([]model.Assessment, int64, error) {
	var as []model.Assessment
	var total int64
	query := r.DB.WithContext(ctx).Model(&model.Assessment{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&as).Error
	return as, total, err
}

func (r *AssessmentRepository) UpdateAssessment(ctx context.Context, a *model.Assessment) error {
	return r.DB.WithContext(ctx).Save(a).Error
}

func (r *AssessmentRepository) DeleteAssessment(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Assessment{}).Error
}
