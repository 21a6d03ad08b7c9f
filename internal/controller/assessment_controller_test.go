package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"edu_assessment_backend/internal/model"
	"edu_assessment_backend/internal/service"
	"edu_assessment_backend/internal/util"
	"edu_assessment_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

type stubAssessmentFetcher struct {
	assessment *model.Assessment
	err        error
	calls      int
}

func (s *stubAssessmentFetcher) FindAssessmentByID(ctx context.Context, id string) (*model.Assessment, error) {
	s.calls++
	return s.assessment, s.err
}

type stubLessonFetcher struct{ calls int }

func (s *stubLessonFetcher) FindLessonByID(ctx context.Context, id string) (*model.Lesson, error) {
	s.calls++
	return nil, nil
}

type stubArgumentFetcher struct{ calls int }

func (s *stubArgumentFetcher) FindArgumentsByAssessmentID(ctx context.Context, assessmentID string) ([]model.Argument, error) {
	s.calls++
	return nil, nil
}

type stubQuestionFetcher struct {
	questions []model.Question
	calls     int
}

func (s *stubQuestionFetcher) FindQuestionsWithOptionsByAssessmentID(ctx context.Context, assessmentID string) ([]model.Question, error) {
	s.calls++
	return s.questions, nil
}

type stubAnswerFetcher struct{ calls int }

func (s *stubAnswerFetcher) FindAnswersByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]*model.Answer, error) {
	s.calls++
	return map[string]*model.Answer{}, nil
}

type detailHarness struct {
	assessments *stubAssessmentFetcher
	lessons     *stubLessonFetcher
	arguments   *stubArgumentFetcher
	questions   *stubQuestionFetcher
	answers     *stubAnswerFetcher
	router      *gin.Engine
}

func newDetailHarness() *detailHarness {
	h := &detailHarness{
		assessments: &stubAssessmentFetcher{},
		lessons:     &stubLessonFetcher{},
		arguments:   &stubArgumentFetcher{},
		questions:   &stubQuestionFetcher{},
		answers:     &stubAnswerFetcher{},
	}
	detailSvc := service.NewAssessmentDetailService(h.assessments, h.lessons, h.arguments, h.questions, h.answers, nil)
	ctrl := NewAssessmentController(nil, detailSvc)

	h.router = gin.New()
	h.router.GET("/api/assessments/:id/questions/detailed", ctrl.GetQuestionsDetailed)
	return h
}

func (h *detailHarness) get(t *testing.T, path string) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	h.router.ServeHTTP(w, req)

	var body util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func (h *detailHarness) storageCalls() int {
	return h.assessments.calls + h.lessons.calls + h.arguments.calls + h.questions.calls + h.answers.calls
}

func TestGetQuestionsDetailedEndpointSuccess(t *testing.T) {
	h := newDetailHarness()
	h.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: "7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a"},
		Slug:     "intro-quiz",
		Title:    "Intro Quiz",
		Type:     model.AssessmentQuiz,
	}
	h.questions.questions = []model.Question{
		{UUIDBase: model.UUIDBase{ID: "q1"}, Text: "Q1", Type: model.QuestionOpen},
	}

	w, body := h.get(t, "/api/assessments/7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a/questions/detailed")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body.Message)
	require.NotNil(t, body.Data)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["totalQuestions"])
	assert.Equal(t, float64(0), data["totalQuestionsWithAnswers"])
	assert.NotContains(t, data, "lesson")
}

func TestGetQuestionsDetailedEndpointNormalizesID(t *testing.T) {
	h := newDetailHarness()
	h.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: "7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a"},
		Slug:     "intro-quiz",
		Title:    "Intro Quiz",
		Type:     model.AssessmentQuiz,
	}

	w, _ := h.get(t, "/api/assessments/7F2D3A44-9C1B-4E5F-8A6D-0B1C2D3E4F5A/questions/detailed")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, h.assessments.calls)
}

func TestGetQuestionsDetailedEndpointRejectsMalformedID(t *testing.T) {
	h := newDetailHarness()

	w, body := h.get(t, "/api/assessments/not-a-uuid/questions/detailed")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_INPUT", body.Error.Kind)
	assert.Equal(t, "id", body.Error.Field)
	assert.Equal(t, "uuid", body.Error.Rule)

	// Rejection happens before the service runs; storage is never touched.
	assert.Equal(t, 0, h.storageCalls())
}

func TestGetQuestionsDetailedEndpointNotFound(t *testing.T) {
	h := newDetailHarness()

	w, body := h.get(t, "/api/assessments/7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a/questions/detailed")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Kind)
}

func TestGetQuestionsDetailedEndpointStorageFailure(t *testing.T) {
	h := newDetailHarness()
	h.assessments.err = errors.New("connection refused")

	w, body := h.get(t, "/api/assessments/7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a/questions/detailed")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Kind)
	// The storage cause never leaks into the response body.
	assert.NotContains(t, w.Body.String(), "connection refused")
}
