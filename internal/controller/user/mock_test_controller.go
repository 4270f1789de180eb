package user

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prepmint/examcore/internal/controller"
	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/service"
	"github.com/rs/zerolog/log"
)

const dateLayout = "2006-01-02"

type MockTestController struct {
	mockTestSvc service.MockTestService
}

func NewMockTestController(mockTestSvc service.MockTestService) *MockTestController {
	return &MockTestController{mockTestSvc: mockTestSvc}
}

// GenerateTest godoc
// @Summary Generate a mock test for a course
// @Description Returns a fresh random 40-question test with at least 10 image questions when available. Nothing is persisted.
// @Tags mock
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.MockTestResponse
// @Failure 404 {object} dto.ErrorResponse "No questions for this course"
// @Failure 422 {object} dto.ErrorResponse "Course pool smaller than the test length"
// @Router /mock/{course_id}/questions [get]
func (ctrl *MockTestController) GenerateTest(c *gin.Context) {
	courseID, err := strconv.ParseUint(c.Param("course_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid course ID format"})
		return
	}

	test, err := ctrl.mockTestSvc.GenerateTest(uint(courseID))
	if err != nil {
		log.Warn().Err(err).Uint64("courseID", courseID).Msg("Failed to generate mock test")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, test)
}

// SubmitAttempt godoc
// @Summary Submit a mock test attempt
// @Description Scores the submitted answers against the course's correct options and records the attempt.
// @Tags mock
// @Accept json
// @Produce json
// @Param attempt body dto.SubmitMockAttemptRequest true "Submitted answers"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Attempt could not be recorded"
// @Router /mock/submit [post]
func (ctrl *MockTestController) SubmitAttempt(c *gin.Context) {
	var req dto.SubmitMockAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitMockAttemptRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	attempt, err := ctrl.mockTestSvc.SubmitAttempt(req)
	if err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Failed to submit mock attempt")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

// GetStudentAttempts godoc
// @Summary List a student's mock attempts
// @Description Newest first; optional inclusive date-range filter.
// @Tags mock
// @Produce json
// @Param student_id path int true "Student ID"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.AttemptSummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or date format"
// @Router /mock/attempts/{student_id} [get]
func (ctrl *MockTestController) GetStudentAttempts(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Param("student_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}

	var startDate, endDate *time.Time
	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start_date, expected YYYY-MM-DD"})
			return
		}
		startDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end_date, expected YYYY-MM-DD"})
			return
		}
		endDate = &t
	}

	attempts, err := ctrl.mockTestSvc.GetStudentAttempts(uint(studentID), startDate, endDate)
	if err != nil {
		log.Error().Err(err).Uint64("studentID", studentID).Msg("Failed to list mock attempts")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetAttemptDetails godoc
// @Summary Get full details of a mock attempt
// @Description Merges the stored answers with the referenced questions and correctness flags.
// @Tags mock
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /mock/attempt/{attempt_id}/details [get]
func (ctrl *MockTestController) GetAttemptDetails(c *gin.Context) {
	attemptID, err := strconv.ParseUint(c.Param("attempt_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid attempt ID format"})
		return
	}

	details, err := ctrl.mockTestSvc.GetAttemptDetails(uint(attemptID))
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Msg("Failed to load attempt details")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}
