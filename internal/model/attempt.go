package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Answer is a single (question, selected option) pair as submitted by a
// student. Neither reference is guaranteed to exist; scoring treats unknown
// question ids as worth nothing rather than as an error.
type Answer struct {
	QuestionID       uint     `json:"question_id"`
	SelectedOptionID OptionID `json:"selected_option_id"`
}

// AnswerList is stored as a single JSONB column on the attempt row, so the
// score and the answers it was computed from are written in one atomic
// insert and can never drift apart.
type AnswerList []Answer

func (l AnswerList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *AnswerList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported answers column type %T", src)
}

// Attempt is an immutable record of one scored submission. Mock-test
// attempts carry only a CourseID; past-year-paper attempts also carry the
// PaperID. SubmittedAt is server-assigned.
type Attempt struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	StudentID   uint           `json:"student_id" gorm:"not null;index"`
	CourseID    uint           `json:"course_id" gorm:"not null;index"`
	PaperID     *uint          `json:"paper_id,omitempty" gorm:"index"`
	Answers     AnswerList     `json:"answers" gorm:"type:jsonb;not null"`
	Score       int            `json:"score" gorm:"not null"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
