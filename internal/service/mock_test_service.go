package service

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/model"
	"github.com/prepmint/examcore/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	// MockTestQuestionCount is the fixed length of a generated mock test.
	MockTestQuestionCount = 40
	// MockTestMinImageCount is the minimum number of image-bearing questions
	// per test, when the course pool has that many.
	MockTestMinImageCount = 10
)

type MockTestService interface {
	GenerateTest(courseID uint) (*dto.MockTestResponse, error)
	SubmitAttempt(req dto.SubmitMockAttemptRequest) (*dto.AttemptResponse, error)
	GetStudentAttempts(studentID uint, startDate, endDate *time.Time) ([]dto.AttemptSummaryResponse, error)
	GetAttemptDetails(attemptID uint) (*dto.AttemptDetailResponse, error)
}

type mockTestService struct {
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	sampler      Sampler
	scorer       Scorer
}

func NewMockTestService(
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	sampler Sampler,
	scorer Scorer,
) MockTestService {
	return &mockTestService{
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		sampler:      sampler,
		scorer:       scorer,
	}
}

// GenerateTest reads the current course pool and samples a fresh test from
// it. The result is never persisted; a second call produces a different
// selection.
func (s *mockTestService) GenerateTest(courseID uint) (*dto.MockTestResponse, error) {
	pool, err := s.questionRepo.FindMockPool(courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("Failed to read question pool")
		return nil, fmt.Errorf("%w: reading question pool: %v", model.ErrPersistence, err)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: no questions for course %d", model.ErrNotFound, courseID)
	}

	selected, err := s.sampler.Sample(pool, MockTestQuestionCount, MockTestMinImageCount)
	if err != nil {
		return nil, err
	}

	var questions []dto.QuestionResponse
	if err := copier.Copy(&questions, &selected); err != nil {
		return nil, fmt.Errorf("error preparing test response: %w", err)
	}
	return &dto.MockTestResponse{
		CourseID:       courseID,
		TotalQuestions: len(questions),
		Questions:      questions,
	}, nil
}

// SubmitAttempt scores the submission against the course's correct options
// and records it atomically. The stored answers are the verbatim submission;
// scoring counts each distinct question id once.
func (s *mockTestService) SubmitAttempt(req dto.SubmitMockAttemptRequest) (*dto.AttemptResponse, error) {
	answers := toModelAnswers(req.Answers)
	distinct := distinctAnswers(answers)

	correct, err := s.questionRepo.CorrectOptionsForCourse(req.CourseID, questionIDs(distinct))
	if err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Failed to read correct options")
		return nil, fmt.Errorf("%w: reading correct options: %v", model.ErrPersistence, err)
	}
	score := s.scorer.Score(correct, distinct)

	attempt := model.Attempt{
		StudentID:   req.StudentID,
		CourseID:    req.CourseID,
		Answers:     answers,
		Score:       score,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("studentID", req.StudentID).Uint("courseID", req.CourseID).Msg("Failed to record mock attempt")
		return nil, fmt.Errorf("%w: recording attempt: %v", model.ErrPersistence, err)
	}

	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, &attempt); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	return &resp, nil
}

func (s *mockTestService) GetStudentAttempts(studentID uint, startDate, endDate *time.Time) ([]dto.AttemptSummaryResponse, error) {
	if endDate != nil {
		// The filter is date-granular; extend to the end of the day so the
		// end date is inclusive.
		end := endDate.Add(24 * time.Hour)
		endDate = &end
	}
	attempts, err := s.attemptRepo.FindAllMockByStudent(studentID, startDate, endDate)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to read mock attempts")
		return nil, fmt.Errorf("%w: reading attempts: %v", model.ErrPersistence, err)
	}
	var resp []dto.AttemptSummaryResponse
	if err := copier.Copy(&resp, &attempts); err != nil {
		return nil, fmt.Errorf("error preparing attempts response: %w", err)
	}
	return resp, nil
}

func (s *mockTestService) GetAttemptDetails(attemptID uint) (*dto.AttemptDetailResponse, error) {
	return loadAttemptDetail(s.attemptRepo, s.questionRepo, attemptID)
}
