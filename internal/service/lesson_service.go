package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"edu_assessment_backend/internal/model"
	"edu_assessment_backend/internal/repository"
	"edu_assessment_backend/internal/util"
)

type LessonService struct {
	Repo    *repository.LessonRepository
	Storage *StorageService
}

func NewLessonService(repo *repository.LessonRepository, storage *StorageService) *LessonService {
	return &LessonService{Repo: repo, Storage: storage}
}

func (s *LessonService) GetLesson(ctx context.Context, id string) (*model.Lesson, error) {
	l, err := s.Repo.FindLessonByID(ctx, id)
	if err != nil {
		return nil, util.NewRepositoryError("lesson lookup", err)
	}
	if l == nil {
		return nil, util.NewNotFoundError("lesson")
	}
	return l, nil
}

func (s *LessonService) ListLessonsByModule(ctx context.Context, moduleID string) ([]model.Lesson, error) {
	ls, err := s.Repo.ListLessonsByModuleID(ctx, moduleID)
	if err != nil {
		return nil, util.NewRepositoryError("lesson list", err)
	}
	return ls, nil
}

// AttachVideo stores an uploaded lesson video, probes its duration and
// records both on the lesson. The file lands in a temp path first so ffprobe
// can read it before it is pushed to the storage provider.
func (s *LessonService) AttachVideo(ctx context.Context, lessonID string, file *multipart.FileHeader) (*model.Lesson, error) {
	lesson, err := s.Repo.FindLessonByID(ctx, lessonID)
	if err != nil {
		return nil, util.NewRepositoryError("lesson lookup", err)
	}
	if lesson == nil {
		return nil, util.NewNotFoundError("lesson")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, util.NewInvalidInputError("video", "extension", "unsupported video format "+ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, util.NewInvalidInputError("video", "upload", "could not read uploaded file")
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, []string{util.MimeVideo, util.MimeOctetStream}); err != nil {
		return nil, util.NewInvalidInputError("video", "mime", err.Error())
	}
	if _, err := src.Seek(0, 0); err != nil {
		return nil, util.NewInvalidInputError("video", "upload", "could not rewind uploaded file")
	}

	tmp, err := os.CreateTemp("", "lesson-video-*"+ext)
	if err != nil {
		return nil, util.NewRepositoryError("video staging", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := copyUpload(tmp, src); err != nil {
		return nil, util.NewRepositoryError("video staging", err)
	}

	info, err := util.ProbeVideo(tmpPath)
	if err != nil {
		return nil, util.NewInvalidInputError("video", "probe", "could not read video metadata")
	}

	objectName := fmt.Sprintf("lessons/%s/video%s", lessonID, ext)
	url, err := s.Storage.UploadFile(ctx, objectName, tmpPath, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, util.NewRepositoryError("video upload", err)
	}

	duration := int(info.Duration)
	lesson.VideoURL = &url
	lesson.DurationInSeconds = &duration
	if err := s.Repo.UpdateLesson(ctx, lesson); err != nil {
		return nil, util.NewRepositoryError("lesson update", err)
	}
	return lesson, nil
}

func copyUpload(dst *os.File, src multipart.File) error {
	defer dst.Close()
	_, err := dst.ReadFrom(src)
	return err
}
