package model

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionOpen           QuestionType = "OPEN"
)

// swagger:model Question
type Question struct {
	UUIDBase
	Text         string           `gorm:"type:text;not null" json:"text"`
	Type         QuestionType     `gorm:"size:20;not null" json:"type"`
	AssessmentID string           `gorm:"type:varchar(36);index;not null" json:"assessmentId"`
	ArgumentID   *string          `gorm:"type:varchar(36);index" json:"argumentId,omitempty"`
	Options      []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model QuestionOption
type QuestionOption struct {
	UUIDBase
	Text       string `gorm:"type:text;not null" json:"text"`
	QuestionID string `gorm:"type:varchar(36);index;not null" json:"questionId"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
