package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prepmint/examcore/internal/controller"
	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/service"
	"github.com/rs/zerolog/log"
)

type PYQController struct {
	paperSvc service.PaperService
}

func NewPYQController(paperSvc service.PaperService) *PYQController {
	return &PYQController{paperSvc: paperSvc}
}

// GetPapers godoc
// @Summary List past-year papers for a course
// @Tags pyq
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.PaperResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /pyq/{course_id}/papers [get]
func (ctrl *PYQController) GetPapers(c *gin.Context) {
	courseID, err := strconv.ParseUint(c.Param("course_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid course ID format"})
		return
	}

	papers, err := ctrl.paperSvc.GetPapersForCourse(uint(courseID))
	if err != nil {
		log.Error().Err(err).Uint64("courseID", courseID).Msg("Failed to list papers")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, papers)
}

// GetPaperQuestions godoc
// @Summary Get the full question set of a paper
// @Tags pyq
// @Produce json
// @Param paper_id path int true "Paper ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Router /pyq/paper/{paper_id}/questions [get]
func (ctrl *PYQController) GetPaperQuestions(c *gin.Context) {
	paperID, err := strconv.ParseUint(c.Param("paper_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid paper ID format"})
		return
	}

	questions, err := ctrl.paperSvc.GetPaperQuestions(uint(paperID))
	if err != nil {
		log.Warn().Err(err).Uint64("paperID", paperID).Msg("Failed to load paper questions")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// SubmitAttempt godoc
// @Summary Submit a past-year-paper attempt
// @Tags pyq
// @Accept json
// @Produce json
// @Param attempt body dto.SubmitPaperAttemptRequest true "Submitted answers"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Router /pyq/attempt/submit [post]
func (ctrl *PYQController) SubmitAttempt(c *gin.Context) {
	var req dto.SubmitPaperAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitPaperAttemptRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	attempt, err := ctrl.paperSvc.SubmitAttempt(req)
	if err != nil {
		log.Error().Err(err).Uint("paperID", req.PaperID).Msg("Failed to submit paper attempt")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

// GetStudentAttempts godoc
// @Summary List a student's paper attempts
// @Tags pyq
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {array} dto.AttemptSummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /pyq/attempts/{student_id} [get]
func (ctrl *PYQController) GetStudentAttempts(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Param("student_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid student ID format"})
		return
	}

	attempts, err := ctrl.paperSvc.GetStudentAttempts(uint(studentID))
	if err != nil {
		log.Error().Err(err).Uint64("studentID", studentID).Msg("Failed to list paper attempts")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetAttemptDetails godoc
// @Summary Get full details of a paper attempt
// @Tags pyq
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /pyq/attempt/{attempt_id}/details [get]
func (ctrl *PYQController) GetAttemptDetails(c *gin.Context) {
	attemptID, err := strconv.ParseUint(c.Param("attempt_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid attempt ID format"})
		return
	}

	details, err := ctrl.paperSvc.GetAttemptDetails(uint(attemptID))
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Msg("Failed to load paper attempt details")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}
