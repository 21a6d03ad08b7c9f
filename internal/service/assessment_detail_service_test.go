package service

import (
	"context"
	"errors"
	"testing"

	"edu_assessment_backend/internal/model"
	"edu_assessment_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssessmentStore struct {
	assessment *model.Assessment
	err        error
	calls      int
}

func (f *fakeAssessmentStore) FindAssessmentByID(ctx context.Context, id string) (*model.Assessment, error) {
	f.calls++
	return f.assessment, f.err
}

type fakeLessonStore struct {
	lesson *model.Lesson
	err    error
	calls  int
}

func (f *fakeLessonStore) FindLessonByID(ctx context.Context, id string) (*model.Lesson, error) {
	f.calls++
	return f.lesson, f.err
}

type fakeArgumentStore struct {
	arguments []model.Argument
	err       error
	calls     int
}

func (f *fakeArgumentStore) FindArgumentsByAssessmentID(ctx context.Context, assessmentID string) ([]model.Argument, error) {
	f.calls++
	return f.arguments, f.err
}

type fakeQuestionStore struct {
	questions []model.Question
	err       error
	calls     int
}

func (f *fakeQuestionStore) FindQuestionsWithOptionsByAssessmentID(ctx context.Context, assessmentID string) ([]model.Question, error) {
	f.calls++
	return f.questions, f.err
}

type fakeAnswerStore struct {
	answers    map[string]*model.Answer
	err        error
	calls      int
	queriedIDs []string
}

func (f *fakeAnswerStore) FindAnswersByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]*model.Answer, error) {
	f.calls++
	f.queriedIDs = questionIDs
	if f.err != nil {
		return nil, f.err
	}
	if f.answers == nil {
		return map[string]*model.Answer{}, nil
	}
	return f.answers, nil
}

type detailFixtures struct {
	assessments *fakeAssessmentStore
	lessons     *fakeLessonStore
	arguments   *fakeArgumentStore
	questions   *fakeQuestionStore
	answers     *fakeAnswerStore
	service     *AssessmentDetailService
}

func newDetailFixtures() *detailFixtures {
	f := &detailFixtures{
		assessments: &fakeAssessmentStore{},
		lessons:     &fakeLessonStore{},
		arguments:   &fakeArgumentStore{},
		questions:   &fakeQuestionStore{},
		answers:     &fakeAnswerStore{},
	}
	f.service = NewAssessmentDetailService(f.assessments, f.lessons, f.arguments, f.questions, f.answers, nil)
	return f
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func quizPosPtr(p model.QuizPosition) *model.QuizPosition { return &p }

const testAssessmentID = "7f2d3a44-9c1b-4e5f-8a6d-0b1c2d3e4f5a"

func TestGetQuestionsDetailedQuizWithLessonAndAnswer(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase:     model.UUIDBase{ID: testAssessmentID},
		Slug:         "intro-quiz",
		Title:        "Intro Quiz",
		Type:         model.AssessmentQuiz,
		QuizPosition: quizPosPtr(model.QuizAfterLesson),
		PassingScore: intPtr(70),
		LessonID:     strPtr("lesson-1"),
	}
	f.lessons.lesson = &model.Lesson{
		UUIDBase: model.UUIDBase{ID: "lesson-1"},
		Title:    "Pharmacology Basics",
	}
	f.questions.questions = []model.Question{
		{
			UUIDBase:     model.UUIDBase{ID: "q1"},
			Text:         "Which drug class?",
			Type:         model.QuestionMultipleChoice,
			AssessmentID: testAssessmentID,
			Options: []model.QuestionOption{
				{UUIDBase: model.UUIDBase{ID: "o1"}, Text: "Alpha", QuestionID: "q1"},
				{UUIDBase: model.UUIDBase{ID: "o2"}, Text: "Beta", QuestionID: "q1"},
				{UUIDBase: model.UUIDBase{ID: "o3"}, Text: "Gamma", QuestionID: "q1"},
			},
		},
	}
	f.answers.answers = map[string]*model.Answer{
		"q1": {
			UUIDBase:        model.UUIDBase{ID: "a1"},
			Explanation:     "Beta blockers reduce heart rate.",
			QuestionID:      "q1",
			CorrectOptionID: strPtr("o2"),
			Translations: []model.AnswerTranslation{
				{Locale: "pt", Explanation: "Os betabloqueadores reduzem a frequencia cardiaca."},
				{Locale: "es", Explanation: "Los betabloqueantes reducen la frecuencia cardiaca."},
			},
		},
	}

	resp, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.NoError(t, err)

	assert.Equal(t, testAssessmentID, resp.Assessment.ID)
	assert.Equal(t, model.AssessmentQuiz, resp.Assessment.Type)
	require.NotNil(t, resp.Assessment.QuizPosition)
	assert.Equal(t, model.QuizAfterLesson, *resp.Assessment.QuizPosition)
	require.NotNil(t, resp.Assessment.LessonID)
	assert.Equal(t, "lesson-1", *resp.Assessment.LessonID)
	assert.Nil(t, resp.Assessment.TimeLimitInMinutes)

	require.NotNil(t, resp.Lesson)
	assert.Equal(t, "Pharmacology Basics", resp.Lesson.Title)

	assert.Empty(t, resp.Arguments)
	require.Len(t, resp.Questions, 1)

	q := resp.Questions[0]
	require.Len(t, q.Options, 3)
	assert.Equal(t, "Beta", q.Options[1].Text)
	require.NotNil(t, q.Answer)
	assert.Equal(t, "o2", *q.Answer.CorrectOptionID)
	require.Len(t, q.Answer.Translations, 2)
	assert.Equal(t, "pt", q.Answer.Translations[0].Locale)

	assert.Equal(t, 1, resp.TotalQuestions)
	assert.Equal(t, 1, resp.TotalQuestionsWithAnswers)
	assert.Equal(t, 1, f.lessons.calls)
	assert.Equal(t, []string{"q1"}, f.answers.queriedIDs)
}

func TestGetQuestionsDetailedTimedExamGroupsByArgument(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase:           model.UUIDBase{ID: testAssessmentID},
		Slug:               "final-exam",
		Title:              "Final Exam",
		Type:               model.AssessmentTimedExam,
		TimeLimitInMinutes: intPtr(90),
	}
	f.arguments.arguments = []model.Argument{
		{UUIDBase: model.UUIDBase{ID: "arg1"}, Title: "Cardiology", AssessmentID: testAssessmentID},
		{UUIDBase: model.UUIDBase{ID: "arg2"}, Title: "Neurology", AssessmentID: testAssessmentID},
	}
	f.questions.questions = []model.Question{
		{UUIDBase: model.UUIDBase{ID: "q1"}, Text: "Q1", Type: model.QuestionMultipleChoice, AssessmentID: testAssessmentID, ArgumentID: strPtr("arg1")},
		{UUIDBase: model.UUIDBase{ID: "q2"}, Text: "Q2", Type: model.QuestionMultipleChoice, AssessmentID: testAssessmentID, ArgumentID: strPtr("arg1")},
		{UUIDBase: model.UUIDBase{ID: "q3"}, Text: "Q3", Type: model.QuestionMultipleChoice, AssessmentID: testAssessmentID},
	}

	resp, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.NoError(t, err)

	require.NotNil(t, resp.Assessment.TimeLimitInMinutes)
	assert.Equal(t, 90, *resp.Assessment.TimeLimitInMinutes)
	assert.Nil(t, resp.Assessment.QuizPosition)
	assert.Nil(t, resp.Assessment.LessonID)
	assert.Nil(t, resp.Lesson)
	assert.Equal(t, 0, f.lessons.calls)

	require.Len(t, resp.Arguments, 2)
	assert.Equal(t, "Cardiology", resp.Arguments[0].Title)
	assert.Len(t, resp.Arguments[0].Questions, 2)
	assert.Empty(t, resp.Arguments[1].Questions)

	// The flat question list always carries every question, grouped or not.
	assert.Equal(t, 3, resp.TotalQuestions)
	assert.Equal(t, 0, resp.TotalQuestionsWithAnswers)
}

func TestGetQuestionsDetailedOpenExamHasNoExtras(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: testAssessmentID},
		Slug:     "essay-exam",
		Title:    "Essay Exam",
		Type:     model.AssessmentOpenExam,
	}
	// A stray argument row must never surface outside a timed exam.
	f.arguments.arguments = []model.Argument{
		{UUIDBase: model.UUIDBase{ID: "arg1"}, Title: "Orphan", AssessmentID: testAssessmentID},
	}
	f.questions.questions = []model.Question{
		{UUIDBase: model.UUIDBase{ID: "q1"}, Text: "Discuss.", Type: model.QuestionOpen, AssessmentID: testAssessmentID},
	}

	resp, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.NoError(t, err)

	assert.Nil(t, resp.Lesson)
	assert.Nil(t, resp.Assessment.TimeLimitInMinutes)
	assert.Nil(t, resp.Assessment.QuizPosition)
	assert.Empty(t, resp.Arguments)
	assert.Equal(t, 0, f.lessons.calls)

	require.Len(t, resp.Questions, 1)
	assert.Empty(t, resp.Questions[0].Options)
	assert.Nil(t, resp.Questions[0].Answer)
	assert.Equal(t, 1, resp.TotalQuestions)
	assert.Equal(t, 0, resp.TotalQuestionsWithAnswers)
}

func TestGetQuestionsDetailedZeroQuestions(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: testAssessmentID},
		Slug:     "empty-quiz",
		Title:    "Empty Quiz",
		Type:     model.AssessmentQuiz,
	}

	resp, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.NoError(t, err)

	assert.Empty(t, resp.Questions)
	assert.Empty(t, resp.Arguments)
	assert.Equal(t, 0, resp.TotalQuestions)
	assert.Equal(t, 0, resp.TotalQuestionsWithAnswers)
	assert.Empty(t, f.answers.queriedIDs)
}

func TestGetQuestionsDetailedPartialAnswers(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: testAssessmentID},
		Slug:     "half-done",
		Title:    "Half Done",
		Type:     model.AssessmentQuiz,
	}
	f.questions.questions = []model.Question{
		{UUIDBase: model.UUIDBase{ID: "q1"}, Text: "Q1", Type: model.QuestionMultipleChoice, AssessmentID: testAssessmentID},
		{UUIDBase: model.UUIDBase{ID: "q2"}, Text: "Q2", Type: model.QuestionMultipleChoice, AssessmentID: testAssessmentID},
	}
	f.answers.answers = map[string]*model.Answer{
		"q1": {UUIDBase: model.UUIDBase{ID: "a1"}, Explanation: "Because.", QuestionID: "q1"},
	}

	resp, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalQuestions)
	assert.Equal(t, 1, resp.TotalQuestionsWithAnswers)
	assert.NotNil(t, resp.Questions[0].Answer)
	assert.Nil(t, resp.Questions[1].Answer)
	assert.Empty(t, resp.Questions[0].Answer.Translations)
}

func TestGetQuestionsDetailedAssessmentNotFound(t *testing.T) {
	f := newDetailFixtures()

	resp, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.Error(t, err)
	assert.Nil(t, resp)

	var notFound *util.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "assessment", notFound.Resource)

	assert.Equal(t, 0, f.lessons.calls)
	assert.Equal(t, 0, f.arguments.calls)
	assert.Equal(t, 0, f.questions.calls)
	assert.Equal(t, 0, f.answers.calls)
}

func TestGetQuestionsDetailedMissingLessonOmitsSlot(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: testAssessmentID},
		Slug:     "dangling-quiz",
		Title:    "Dangling Quiz",
		Type:     model.AssessmentQuiz,
		LessonID: strPtr("lesson-gone"),
	}

	resp, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.NoError(t, err)
	assert.Nil(t, resp.Lesson)
	// The dangling reference itself still shows on the assessment.
	require.NotNil(t, resp.Assessment.LessonID)
	assert.Equal(t, 1, f.lessons.calls)
}

func TestGetQuestionsDetailedLessonLookupFailure(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: testAssessmentID},
		Slug:     "quiz",
		Title:    "Quiz",
		Type:     model.AssessmentQuiz,
		LessonID: strPtr("lesson-1"),
	}
	cause := errors.New("connection reset")
	f.lessons.err = cause

	_, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.Error(t, err)

	var repoErr *util.RepositoryError
	require.ErrorAs(t, err, &repoErr)
	assert.Equal(t, "lesson lookup", repoErr.Lookup)
	assert.ErrorIs(t, err, cause)
}

func TestGetQuestionsDetailedQuestionLookupFailure(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: testAssessmentID},
		Slug:     "quiz",
		Title:    "Quiz",
		Type:     model.AssessmentQuiz,
	}
	cause := errors.New("deadlock")
	f.questions.err = cause

	_, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.Error(t, err)

	var repoErr *util.RepositoryError
	require.ErrorAs(t, err, &repoErr)
	assert.Equal(t, "question lookup", repoErr.Lookup)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 0, f.answers.calls)
}

func TestGetQuestionsDetailedAnswerLookupFailure(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: testAssessmentID},
		Slug:     "quiz",
		Title:    "Quiz",
		Type:     model.AssessmentQuiz,
	}
	f.questions.questions = []model.Question{
		{UUIDBase: model.UUIDBase{ID: "q1"}, Text: "Q1", Type: model.QuestionOpen, AssessmentID: testAssessmentID},
	}
	f.answers.err = errors.New("timeout")

	_, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.Error(t, err)

	var repoErr *util.RepositoryError
	require.ErrorAs(t, err, &repoErr)
	assert.Equal(t, "answer lookup", repoErr.Lookup)
}

func TestGetQuestionsDetailedKindIntegrityViolations(t *testing.T) {
	cases := []struct {
		name       string
		assessment *model.Assessment
	}{
		{
			name: "timed exam with lesson reference",
			assessment: &model.Assessment{
				UUIDBase: model.UUIDBase{ID: testAssessmentID},
				Type:     model.AssessmentTimedExam,
				LessonID: strPtr("lesson-1"),
			},
		},
		{
			name: "open exam with quiz position",
			assessment: &model.Assessment{
				UUIDBase:     model.UUIDBase{ID: testAssessmentID},
				Type:         model.AssessmentOpenExam,
				QuizPosition: quizPosPtr(model.QuizBeforeLesson),
			},
		},
		{
			name: "quiz with time limit",
			assessment: &model.Assessment{
				UUIDBase:           model.UUIDBase{ID: testAssessmentID},
				Type:               model.AssessmentQuiz,
				TimeLimitInMinutes: intPtr(30),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newDetailFixtures()
			f.assessments.assessment = tc.assessment

			_, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
			require.Error(t, err)

			var integrity *util.IntegrityError
			assert.ErrorAs(t, err, &integrity)
			assert.Equal(t, 0, f.questions.calls)
		})
	}
}

func TestGetQuestionsDetailedIsIdempotent(t *testing.T) {
	f := newDetailFixtures()
	f.assessments.assessment = &model.Assessment{
		UUIDBase: model.UUIDBase{ID: testAssessmentID},
		Slug:     "repeat",
		Title:    "Repeat",
		Type:     model.AssessmentQuiz,
	}
	f.questions.questions = []model.Question{
		{UUIDBase: model.UUIDBase{ID: "q1"}, Text: "Q1", Type: model.QuestionOpen, AssessmentID: testAssessmentID},
	}

	first, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.NoError(t, err)
	second, err := f.service.GetQuestionsDetailed(context.Background(), testAssessmentID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
