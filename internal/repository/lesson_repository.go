package repository

import (
	"context"
	"errors"

	"edu_assessment_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindLessonByID(ctx context.Context, id string) (*model.Lesson, error) {
	var l model.Lesson
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LessonRepository) ListLessonsByModuleID(ctx context.Context, moduleID string) ([]model.Lesson, error) {
	var ls []model.Lesson
	err := r.DB.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("`order` asc, created_at asc").
		Find(&ls).Error
	return ls, err
}

func (r *LessonRepository) UpdateLesson(ctx context.Context, l *model.Lesson) error {
	return r.DB.WithContext(ctx).Save(l).Error
}
