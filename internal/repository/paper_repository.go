package repository

import (
	"github.com/prepmint/examcore/internal/model"
	"gorm.io/gorm"
)

type PaperRepository interface {
	Create(paper *model.Paper) error
	FindByID(id uint) (*model.Paper, error)
	FindAllByCourseID(courseID uint) ([]model.Paper, error)
}

type paperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) PaperRepository {
	return &paperRepository{db: db}
}

func (r *paperRepository) Create(paper *model.Paper) error {
	return r.db.Create(paper).Error
}

func (r *paperRepository) FindByID(id uint) (*model.Paper, error) {
	var paper model.Paper
	if err := r.db.First(&paper, id).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *paperRepository) FindAllByCourseID(courseID uint) ([]model.Paper, error) {
	var papers []model.Paper
	err := r.db.Where("course_id = ?", courseID).Order("year DESC").Find(&papers).Error
	return papers, err
}
