package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Option is one selectable choice of a multiple-choice question.
type Option struct {
	ID    OptionID `json:"id"`
	Label string   `json:"label"`
}

// OptionList is stored as a single JSONB column so a question row always
// carries its complete ordered option set.
type OptionList []Option

func (l OptionList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *OptionList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported options column type %T", src)
}

// Question belongs to a course; questions with a PaperID are part of a
// past-year paper, questions without one form the course's mock-test pool.
// Invariant: CorrectOptionID matches the id of exactly one entry in Options.
type Question struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	CourseID        uint           `json:"course_id" gorm:"not null;index"`
	PaperID         *uint          `json:"paper_id,omitempty" gorm:"index"`
	QuestionText    string         `json:"question_text" gorm:"type:text;not null"`
	Options         OptionList     `json:"options" gorm:"type:jsonb;not null"`
	CorrectOptionID OptionID       `json:"correct_option_id" gorm:"not null"`
	ImageURL        *string        `json:"image_url,omitempty"`
	Difficulty      *string        `json:"difficulty,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q Question) HasImage() bool {
	return q.ImageURL != nil && *q.ImageURL != ""
}
