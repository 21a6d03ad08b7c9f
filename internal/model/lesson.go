package model

// CourseModule groups lessons inside a course. The composition engine never
// traverses past the lesson, so only the fields the catalog endpoints need are
// kept here.
// swagger:model CourseModule
type CourseModule struct {
	UUIDBase
	Slug  string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Title string `gorm:"size:255;not null" json:"title"`
	Order int    `gorm:"default:0" json:"order"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	Slug              string  `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Title             string  `gorm:"size:255;not null" json:"title"`
	ModuleID          string  `gorm:"type:varchar(36);index;not null" json:"moduleId"`
	Order             int     `gorm:"default:0" json:"order"`
	VideoURL          *string `gorm:"size:512" json:"videoUrl,omitempty"`
	DurationInSeconds *int    `json:"durationInSeconds,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}
