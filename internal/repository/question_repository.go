package repository

import (
	"github.com/prepmint/examcore/internal/model"
	"gorm.io/gorm"
)

// poolPageSize is the fixed batch size used when reading a full question
// pool. The backing store caps single-page reads, so pools above this size
// must be accumulated across pages.
const poolPageSize = 1000

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	// FindMockPool returns every mock-pool question of a course (questions
	// not bound to a paper), reading through all store pages.
	FindMockPool(courseID uint) ([]model.Question, error)
	// FindAllByCourseID returns every question of a course, paper-bound or
	// not. Used by the duplicate gate, which scopes on the course.
	FindAllByCourseID(courseID uint) ([]model.Question, error)
	FindAllByPaperID(paperID uint) ([]model.Question, error)
	CorrectOptionsForCourse(courseID uint, ids []uint) (map[uint]model.OptionID, error)
	CorrectOptionsForPaper(paperID uint, ids []uint) (map[uint]model.OptionID, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// findAllPaged accumulates every row matched by scope in poolPageSize
// batches, stopping on the first short batch. Callers always see the
// complete set regardless of store-side page limits.
func (r *questionRepository) findAllPaged(scope func(*gorm.DB) *gorm.DB) ([]model.Question, error) {
	var all []model.Question
	offset := 0
	for {
		var batch []model.Question
		err := scope(r.db).
			Order("id ASC").
			Limit(poolPageSize).
			Offset(offset).
			Find(&batch).Error
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < poolPageSize {
			return all, nil
		}
		offset += poolPageSize
	}
}

func (r *questionRepository) FindMockPool(courseID uint) ([]model.Question, error) {
	return r.findAllPaged(func(db *gorm.DB) *gorm.DB {
		return db.Where("course_id = ? AND paper_id IS NULL", courseID)
	})
}

func (r *questionRepository) FindAllByCourseID(courseID uint) ([]model.Question, error) {
	return r.findAllPaged(func(db *gorm.DB) *gorm.DB {
		return db.Where("course_id = ?", courseID)
	})
}

func (r *questionRepository) FindAllByPaperID(paperID uint) ([]model.Question, error) {
	return r.findAllPaged(func(db *gorm.DB) *gorm.DB {
		return db.Where("paper_id = ?", paperID)
	})
}

type correctOptionRow struct {
	ID              uint
	CorrectOptionID model.OptionID
}

func (r *questionRepository) correctOptions(scope func(*gorm.DB) *gorm.DB, ids []uint) (map[uint]model.OptionID, error) {
	if len(ids) == 0 {
		return map[uint]model.OptionID{}, nil
	}
	var rows []correctOptionRow
	err := scope(r.db.Model(&model.Question{})).
		Select("id, correct_option_id").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]model.OptionID, len(rows))
	for _, row := range rows {
		out[row.ID] = row.CorrectOptionID
	}
	return out, nil
}

func (r *questionRepository) CorrectOptionsForCourse(courseID uint, ids []uint) (map[uint]model.OptionID, error) {
	return r.correctOptions(func(db *gorm.DB) *gorm.DB {
		return db.Where("course_id = ? AND paper_id IS NULL", courseID)
	}, ids)
}

func (r *questionRepository) CorrectOptionsForPaper(paperID uint, ids []uint) (map[uint]model.OptionID, error) {
	return r.correctOptions(func(db *gorm.DB) *gorm.DB {
		return db.Where("paper_id = ?", paperID)
	}, ids)
}
