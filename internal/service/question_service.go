package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/model"
	"github.com/prepmint/examcore/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionService is the authoring path. Questions are immutable once
// attempts reference them; there is deliberately no update or delete here.
type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	courseRepo   repository.CourseRepository
	paperRepo    repository.PaperRepository
	dupChecker   DuplicateChecker
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	courseRepo repository.CourseRepository,
	paperRepo repository.PaperRepository,
	dupChecker DuplicateChecker,
) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		courseRepo:   courseRepo,
		paperRepo:    paperRepo,
		dupChecker:   dupChecker,
	}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if strings.TrimSpace(req.QuestionText) == "" {
		return nil, fmt.Errorf("%w: question text must not be blank", model.ErrValidation)
	}

	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", model.ErrNotFound, req.CourseID)
		}
		return nil, fmt.Errorf("%w: looking up course: %v", model.ErrPersistence, err)
	}

	if req.PaperID != nil {
		paper, err := s.paperRepo.FindByID(*req.PaperID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: paper %d", model.ErrNotFound, *req.PaperID)
			}
			return nil, fmt.Errorf("%w: looking up paper: %v", model.ErrPersistence, err)
		}
		if paper.CourseID != req.CourseID {
			return nil, fmt.Errorf("%w: paper %d does not belong to course %d", model.ErrValidation, *req.PaperID, req.CourseID)
		}
	}

	seen := make(map[model.OptionID]bool, len(req.Options))
	for _, opt := range req.Options {
		if opt.ID == "" {
			return nil, fmt.Errorf("%w: option ids must not be empty", model.ErrValidation)
		}
		if seen[opt.ID] {
			return nil, fmt.Errorf("%w: duplicate option id %q", model.ErrValidation, opt.ID)
		}
		seen[opt.ID] = true
	}
	if !seen[req.CorrectOptionID] {
		return nil, fmt.Errorf("%w: correct_option_id %q is not among the options", model.ErrValidation, req.CorrectOptionID)
	}

	dup, err := s.dupChecker.IsDuplicate(req.CourseID, req.QuestionText)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("%w: course %d already has this question", model.ErrDuplicateQuestion, req.CourseID)
	}

	var question model.Question
	if err := copier.Copy(&question, &req); err != nil {
		return nil, fmt.Errorf("error preparing question model: %w", err)
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Failed to create question")
		return nil, fmt.Errorf("%w: creating question: %v", model.ErrPersistence, err)
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}
