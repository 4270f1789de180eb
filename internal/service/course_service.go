package service

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/model"
	"github.com/prepmint/examcore/internal/repository"
	"github.com/rs/zerolog/log"
)

type CourseService interface {
	CreateCourse(req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetAllCourses() ([]dto.CourseResponse, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) CreateCourse(req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 3 {
		return nil, fmt.Errorf("%w: course name must be at least 3 characters", model.ErrValidation)
	}

	course := model.Course{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed to create course")
		return nil, fmt.Errorf("%w: creating course: %v", model.ErrPersistence, err)
	}

	var resp dto.CourseResponse
	if err := copier.Copy(&resp, &course); err != nil {
		return nil, fmt.Errorf("error preparing course response: %w", err)
	}
	return &resp, nil
}

func (s *courseService) GetAllCourses() ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read courses")
		return nil, fmt.Errorf("%w: reading courses: %v", model.ErrPersistence, err)
	}
	var resp []dto.CourseResponse
	if err := copier.Copy(&resp, &courses); err != nil {
		return nil, fmt.Errorf("error preparing courses response: %w", err)
	}
	return resp, nil
}
