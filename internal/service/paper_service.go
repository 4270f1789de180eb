package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/model"
	"github.com/prepmint/examcore/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PaperService covers the past-year-question module: paper listing, full
// paper question sets, and scored paper attempts. Unlike mock tests, a
// paper's question set is fixed; nothing is sampled.
type PaperService interface {
	CreatePaper(req dto.CreatePaperRequest) (*dto.PaperResponse, error)
	GetPapersForCourse(courseID uint) ([]dto.PaperResponse, error)
	GetPaperQuestions(paperID uint) ([]dto.QuestionResponse, error)
	SubmitAttempt(req dto.SubmitPaperAttemptRequest) (*dto.AttemptResponse, error)
	GetStudentAttempts(studentID uint) ([]dto.AttemptSummaryResponse, error)
	GetAttemptDetails(attemptID uint) (*dto.AttemptDetailResponse, error)
}

type paperService struct {
	paperRepo    repository.PaperRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	courseRepo   repository.CourseRepository
	scorer       Scorer
}

func NewPaperService(
	paperRepo repository.PaperRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	courseRepo repository.CourseRepository,
	scorer Scorer,
) PaperService {
	return &paperService{
		paperRepo:    paperRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		courseRepo:   courseRepo,
		scorer:       scorer,
	}
}

func (s *paperService) CreatePaper(req dto.CreatePaperRequest) (*dto.PaperResponse, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", model.ErrNotFound, req.CourseID)
		}
		return nil, fmt.Errorf("%w: looking up course: %v", model.ErrPersistence, err)
	}

	paper := model.Paper{
		CourseID: req.CourseID,
		Year:     req.Year,
		ExamDay:  req.ExamDay,
		Title:    req.Title,
	}
	if err := s.paperRepo.Create(&paper); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Failed to create paper")
		return nil, fmt.Errorf("%w: creating paper: %v", model.ErrPersistence, err)
	}

	var resp dto.PaperResponse
	if err := copier.Copy(&resp, &paper); err != nil {
		return nil, fmt.Errorf("error preparing paper response: %w", err)
	}
	return &resp, nil
}

func (s *paperService) GetPapersForCourse(courseID uint) ([]dto.PaperResponse, error) {
	papers, err := s.paperRepo.FindAllByCourseID(courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("Failed to read papers")
		return nil, fmt.Errorf("%w: reading papers: %v", model.ErrPersistence, err)
	}
	var resp []dto.PaperResponse
	if err := copier.Copy(&resp, &papers); err != nil {
		return nil, fmt.Errorf("error preparing papers response: %w", err)
	}
	return resp, nil
}

func (s *paperService) GetPaperQuestions(paperID uint) ([]dto.QuestionResponse, error) {
	if _, err := s.paperRepo.FindByID(paperID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: paper %d", model.ErrNotFound, paperID)
		}
		return nil, fmt.Errorf("%w: looking up paper: %v", model.ErrPersistence, err)
	}

	questions, err := s.questionRepo.FindAllByPaperID(paperID)
	if err != nil {
		log.Error().Err(err).Uint("paperID", paperID).Msg("Failed to read paper questions")
		return nil, fmt.Errorf("%w: reading paper questions: %v", model.ErrPersistence, err)
	}
	var resp []dto.QuestionResponse
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, fmt.Errorf("error preparing questions response: %w", err)
	}
	return resp, nil
}

func (s *paperService) SubmitAttempt(req dto.SubmitPaperAttemptRequest) (*dto.AttemptResponse, error) {
	paper, err := s.paperRepo.FindByID(req.PaperID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: paper %d", model.ErrNotFound, req.PaperID)
		}
		return nil, fmt.Errorf("%w: looking up paper: %v", model.ErrPersistence, err)
	}

	answers := toModelAnswers(req.Answers)
	distinct := distinctAnswers(answers)

	correct, err := s.questionRepo.CorrectOptionsForPaper(paper.ID, questionIDs(distinct))
	if err != nil {
		log.Error().Err(err).Uint("paperID", paper.ID).Msg("Failed to read correct options")
		return nil, fmt.Errorf("%w: reading correct options: %v", model.ErrPersistence, err)
	}
	score := s.scorer.Score(correct, distinct)

	paperID := paper.ID
	attempt := model.Attempt{
		StudentID:   req.StudentID,
		CourseID:    paper.CourseID,
		PaperID:     &paperID,
		Answers:     answers,
		Score:       score,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("studentID", req.StudentID).Uint("paperID", paper.ID).Msg("Failed to record paper attempt")
		return nil, fmt.Errorf("%w: recording attempt: %v", model.ErrPersistence, err)
	}

	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, &attempt); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	return &resp, nil
}

func (s *paperService) GetStudentAttempts(studentID uint) ([]dto.AttemptSummaryResponse, error) {
	attempts, err := s.attemptRepo.FindAllPaperByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to read paper attempts")
		return nil, fmt.Errorf("%w: reading attempts: %v", model.ErrPersistence, err)
	}
	var resp []dto.AttemptSummaryResponse
	if err := copier.Copy(&resp, &attempts); err != nil {
		return nil, fmt.Errorf("error preparing attempts response: %w", err)
	}
	return resp, nil
}

func (s *paperService) GetAttemptDetails(attemptID uint) (*dto.AttemptDetailResponse, error) {
	return loadAttemptDetail(s.attemptRepo, s.questionRepo, attemptID)
}
