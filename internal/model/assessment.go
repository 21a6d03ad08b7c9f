package model

type AssessmentType string

const (
	AssessmentQuiz      AssessmentType = "QUIZ"
	AssessmentTimedExam AssessmentType = "TIMED_EXAM"
	AssessmentOpenExam  AssessmentType = "OPEN_EXAM"
)

type QuizPosition string

const (
	QuizBeforeLesson QuizPosition = "BEFORE_LESSON"
	QuizAfterLesson  QuizPosition = "AFTER_LESSON"
)

// Assessment is a gradable unit containing questions. Which of the optional
// columns may be populated depends on Type: only a QUIZ may carry LessonID and
// QuizPosition, only a TIMED_EXAM may carry TimeLimitInMinutes. Optional
// numeric fields are pointers so an absent value is never stored or rendered
// as zero.
// swagger:model Assessment
type Assessment struct {
	UUIDBase
	Slug               string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Title              string         `gorm:"size:255;not null" json:"title"`
	Description        *string        `gorm:"type:text" json:"description,omitempty"`
	Type               AssessmentType `gorm:"size:20;not null;index" json:"type"`
	QuizPosition       *QuizPosition  `gorm:"size:20" json:"quizPosition,omitempty"`
	PassingScore       *int           `json:"passingScore,omitempty"` // 0-100
	TimeLimitInMinutes *int           `json:"timeLimitInMinutes,omitempty"`
	RandomizeQuestions bool           `gorm:"default:false" json:"randomizeQuestions"`
	RandomizeOptions   bool           `gorm:"default:false" json:"randomizeOptions"`
	LessonID           *string        `gorm:"type:varchar(36);index" json:"lessonId,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// Argument is a named topic grouping inside an assessment. Questions reference
// it by a weak back-reference; the argument never owns its questions.
// swagger:model Argument
type Argument struct {
	UUIDBase
	Title        string  `gorm:"size:255;not null" json:"title"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	AssessmentID string  `gorm:"type:varchar(36);index;not null" json:"assessmentId"`
}

func (Argument) TableName() string {
	return "arguments"
}
