package service

import (
	"context"
	"fmt"
	"time"

	"edu_assessment_backend/internal/model"
	"edu_assessment_backend/internal/util"

	"golang.org/x/sync/errgroup"
)

// The composition engine depends on five narrow read ports instead of the
// concrete repositories, so tests can substitute counting fakes. FindByID
// style ports return (nil, nil) on absence; an error always means the storage
// layer itself failed.

type AssessmentFetcher interface {
	FindAssessmentByID(ctx context.Context, id string) (*model.Assessment, error)
}

type LessonFetcher interface {
	FindLessonByID(ctx context.Context, id string) (*model.Lesson, error)
}

type ArgumentFetcher interface {
	FindArgumentsByAssessmentID(ctx context.Context, assessmentID string) ([]model.Argument, error)
}

type QuestionFetcher interface {
	FindQuestionsWithOptionsByAssessmentID(ctx context.Context, assessmentID string) ([]model.Question, error)
}

type AnswerFetcher interface {
	FindAnswersByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]*model.Answer, error)
}

// View types rendered by the detailed endpoint. Optional fields are pointers
// with omitempty so a field that is not applicable for the assessment kind is
// absent from the wire format, never zeroed or nulled. The engine is the only
// place that decides applicability.

type AssessmentView struct {
	ID                 string               `json:"id"`
	Slug               string               `json:"slug"`
	Title              string               `json:"title"`
	Description        *string              `json:"description,omitempty"`
	Type               model.AssessmentType `json:"type"`
	PassingScore       *int                 `json:"passingScore,omitempty"`
	TimeLimitInMinutes *int                 `json:"timeLimitInMinutes,omitempty"`
	QuizPosition       *model.QuizPosition  `json:"quizPosition,omitempty"`
	RandomizeQuestions bool                 `json:"randomizeQuestions"`
	RandomizeOptions   bool                 `json:"randomizeOptions"`
	LessonID           *string              `json:"lessonId,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

type LessonView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type OptionView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type TranslationView struct {
	Locale      string `json:"locale"`
	Explanation string `json:"explanation"`
}

type AnswerView struct {
	ID              string            `json:"id"`
	CorrectOptionID *string           `json:"correctOptionId,omitempty"`
	Explanation     string            `json:"explanation"`
	Translations    []TranslationView `json:"translations"`
}

type QuestionView struct {
	ID         string             `json:"id"`
	Text       string             `json:"text"`
	Type       model.QuestionType `json:"type"`
	ArgumentID *string            `json:"argumentId,omitempty"`
	Options    []OptionView       `json:"options"`
	Answer     *AnswerView        `json:"answer,omitempty"`
}

type ArgumentView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Questions   []QuestionView `json:"questions"`
}

// AssessmentDetailResponse is the composed, request-scoped view. It is built
// once and never mutated afterwards.
type AssessmentDetailResponse struct {
	Assessment                AssessmentView `json:"assessment"`
	Lesson                    *LessonView    `json:"lesson,omitempty"`
	Arguments                 []ArgumentView `json:"arguments"`
	Questions                 []QuestionView `json:"questions"`
	TotalQuestions            int            `json:"totalQuestions"`
	TotalQuestionsWithAnswers int            `json:"totalQuestionsWithAnswers"`
}

type AssessmentDetailService struct {
	assessments AssessmentFetcher
	lessons     LessonFetcher
	arguments   ArgumentFetcher
	questions   QuestionFetcher
	answers     AnswerFetcher
	cache       *DetailCache
}

func NewAssessmentDetailService(
	assessments AssessmentFetcher,
	lessons LessonFetcher,
	arguments ArgumentFetcher,
	questions QuestionFetcher,
	answers AnswerFetcher,
	cache *DetailCache,
) *AssessmentDetailService {
	return &AssessmentDetailService{
		assessments: assessments,
		lessons:     lessons,
		arguments:   arguments,
		questions:   questions,
		answers:     answers,
		cache:       cache,
	}
}

// GetQuestionsDetailed assembles the denormalized view of one assessment: its
// own fields, the owning lesson for a linked quiz, argument groupings, every
// question with options, and each question's canonical answer with
// translations. The id must already be validated. Expected failures come back
// as *util.NotFoundError or *util.RepositoryError; a *util.IntegrityError
// marks corrupt data written by a bug, not a valid external condition.
func (s *AssessmentDetailService) GetQuestionsDetailed(ctx context.Context, id string) (*AssessmentDetailResponse, error) {
	if cached, ok := s.cache.Get(ctx, id); ok {
		return cached, nil
	}

	assessment, err := s.assessments.FindAssessmentByID(ctx, id)
	if err != nil {
		return nil, util.NewRepositoryError("assessment lookup", err)
	}
	if assessment == nil {
		return nil, util.NewNotFoundError("assessment")
	}
	if err := checkKindIntegrity(assessment); err != nil {
		return nil, err
	}

	// The lesson, argument and question fetches only need the assessment id,
	// so they run concurrently; the answer batch waits on the question ids.
	var (
		lesson    *model.Lesson
		arguments []model.Argument
		questions []model.Question
	)

	g, gctx := errgroup.WithContext(ctx)

	if assessment.Type == model.AssessmentQuiz && assessment.LessonID != nil {
		lessonID := *assessment.LessonID
		g.Go(func() error {
			// A dangling lesson reference is a data-quality issue, not a
			// reason to deny the whole view: absence leaves the slot empty.
			l, err := s.lessons.FindLessonByID(gctx, lessonID)
			if err != nil {
				return util.NewRepositoryError("lesson lookup", err)
			}
			lesson = l
			return nil
		})
	}

	g.Go(func() error {
		// Fetched for every kind; kinds that do not group questions simply
		// yield zero rows. Kind-awareness lives in the shaping step below.
		args, err := s.arguments.FindArgumentsByAssessmentID(gctx, id)
		if err != nil {
			return util.NewRepositoryError("argument lookup", err)
		}
		arguments = args
		return nil
	})

	g.Go(func() error {
		qs, err := s.questions.FindQuestionsWithOptionsByAssessmentID(gctx, id)
		if err != nil {
			return util.NewRepositoryError("question lookup", err)
		}
		questions = qs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	questionIDs := make([]string, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}

	answersByQuestion, err := s.answers.FindAnswersByQuestionIDs(ctx, questionIDs)
	if err != nil {
		return nil, util.NewRepositoryError("answer lookup", err)
	}

	response := shapeDetailResponse(assessment, lesson, arguments, questions, answersByQuestion)
	s.cache.Set(ctx, id, response)
	return response, nil
}

// checkKindIntegrity asserts the stored row respects the kind invariant:
// lesson linkage and quiz position belong to quizzes only, a time limit to
// timed exams only.
func checkKindIntegrity(a *model.Assessment) error {
	if a.Type != model.AssessmentQuiz {
		if a.LessonID != nil {
			return util.NewIntegrityError(fmt.Sprintf("assessment %s of type %s has a lesson reference", a.ID, a.Type))
		}
		if a.QuizPosition != nil {
			return util.NewIntegrityError(fmt.Sprintf("assessment %s of type %s has a quiz position", a.ID, a.Type))
		}
	}
	if a.Type != model.AssessmentTimedExam && a.TimeLimitInMinutes != nil {
		return util.NewIntegrityError(fmt.Sprintf("assessment %s of type %s has a time limit", a.ID, a.Type))
	}
	return nil
}

func shapeDetailResponse(
	assessment *model.Assessment,
	lesson *model.Lesson,
	arguments []model.Argument,
	questions []model.Question,
	answersByQuestion map[string]*model.Answer,
) *AssessmentDetailResponse {
	// Argument groups are meaningful for timed exams only; other kinds always
	// render an empty list regardless of stray rows.
	argumentViews := []ArgumentView{}
	argumentIndex := make(map[string]int)
	if assessment.Type == model.AssessmentTimedExam {
		for _, arg := range arguments {
			argumentIndex[arg.ID] = len(argumentViews)
			argumentViews = append(argumentViews, ArgumentView{
				ID:          arg.ID,
				Title:       arg.Title,
				Description: arg.Description,
				Questions:   []QuestionView{},
			})
		}
	}

	questionViews := make([]QuestionView, 0, len(questions))
	totalWithAnswers := 0

	for _, q := range questions {
		options := make([]OptionView, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, OptionView{ID: opt.ID, Text: opt.Text})
		}

		var answerView *AnswerView
		if answer := answersByQuestion[q.ID]; answer != nil {
			translations := make([]TranslationView, 0, len(answer.Translations))
			for _, t := range answer.Translations {
				translations = append(translations, TranslationView{
					Locale:      t.Locale,
					Explanation: t.Explanation,
				})
			}
			answerView = &AnswerView{
				ID:              answer.ID,
				CorrectOptionID: answer.CorrectOptionID,
				Explanation:     answer.Explanation,
				Translations:    translations,
			}
			totalWithAnswers++
		}

		view := QuestionView{
			ID:         q.ID,
			Text:       q.Text,
			Type:       q.Type,
			ArgumentID: q.ArgumentID,
			Options:    options,
			Answer:     answerView,
		}
		questionViews = append(questionViews, view)

		if q.ArgumentID != nil {
			if idx, ok := argumentIndex[*q.ArgumentID]; ok {
				argumentViews[idx].Questions = append(argumentViews[idx].Questions, view)
			}
		}
	}

	return &AssessmentDetailResponse{
		Assessment:                buildAssessmentView(assessment),
		Lesson:                    buildLessonView(lesson),
		Arguments:                 argumentViews,
		Questions:                 questionViews,
		TotalQuestions:            len(questionViews),
		TotalQuestionsWithAnswers: totalWithAnswers,
	}
}

// buildAssessmentView populates only the fields meaningful for the kind, so
// no later layer needs to re-check the kind to suppress anything.
func buildAssessmentView(a *model.Assessment) AssessmentView {
	view := AssessmentView{
		ID:                 a.ID,
		Slug:               a.Slug,
		Title:              a.Title,
		Description:        a.Description,
		Type:               a.Type,
		PassingScore:       a.PassingScore,
		RandomizeQuestions: a.RandomizeQuestions,
		RandomizeOptions:   a.RandomizeOptions,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	switch a.Type {
	case model.AssessmentQuiz:
		view.QuizPosition = a.QuizPosition
		view.LessonID = a.LessonID
	case model.AssessmentTimedExam:
		view.TimeLimitInMinutes = a.TimeLimitInMinutes
	}

	return view
}

func buildLessonView(l *model.Lesson) *LessonView {
	if l == nil {
		return nil
	}
	return &LessonView{ID: l.ID, Title: l.Title}
}
