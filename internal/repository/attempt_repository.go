package repository

import (
	"time"

	"github.com/prepmint/examcore/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	// Create persists the attempt in a single transaction. The answers are a
	// column of the attempt row, so a failed write leaves nothing readable.
	Create(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindAllMockByStudent(studentID uint, startDate, endDate *time.Time) ([]model.Attempt, error)
	FindAllPaperByStudent(studentID uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(attempt).Error
	})
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllMockByStudent(studentID uint, startDate, endDate *time.Time) ([]model.Attempt, error) {
	query := r.db.Where("student_id = ? AND paper_id IS NULL", studentID)
	if startDate != nil {
		query = query.Where("submitted_at >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("submitted_at <= ?", *endDate)
	}
	var attempts []model.Attempt
	err := query.Order("submitted_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllPaperByStudent(studentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("student_id = ? AND paper_id IS NOT NULL", studentID).
		Order("submitted_at DESC").
		Find(&attempts).Error
	return attempts, err
}
