package model

// Answer is the single canonical answer of a question. CorrectOptionID is set
// only for multiple-choice questions.
// swagger:model Answer
type Answer struct {
	UUIDBase
	Explanation     string              `gorm:"type:text;not null" json:"explanation"`
	QuestionID      string              `gorm:"type:varchar(36);uniqueIndex;not null" json:"questionId"`
	CorrectOptionID *string             `gorm:"type:varchar(36)" json:"correctOptionId,omitempty"`
	Translations    []AnswerTranslation `gorm:"foreignKey:AnswerID" json:"translations,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}

// AnswerTranslation carries the explanation in one locale. Rows are kept in
// insertion order; the composition layer does not sort or deduplicate them.
// swagger:model AnswerTranslation
type AnswerTranslation struct {
	BaseModel
	AnswerID    string `gorm:"type:varchar(36);index;not null" json:"answerId"`
	Locale      string `gorm:"size:10;not null" json:"locale"`
	Explanation string `gorm:"type:text;not null" json:"explanation"`
}

func (AnswerTranslation) TableName() string {
	return "answer_translations"
}
