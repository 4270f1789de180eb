package model

import (
	"time"

	"gorm.io/gorm"
)

// Paper is a past-year question paper of a course.
type Paper struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CourseID  uint           `json:"course_id" gorm:"not null;index"`
	Year      int            `json:"year" gorm:"not null"`
	ExamDay   *string        `json:"exam_day,omitempty"`
	Title     string         `json:"title" gorm:"not null"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:PaperID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
