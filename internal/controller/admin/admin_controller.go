package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepmint/examcore/internal/controller"
	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	courseSvc   service.CourseService
	questionSvc service.QuestionService
	paperSvc    service.PaperService
	uploadSvc   service.UploadService
}

func NewAdminController(
	courseSvc service.CourseService,
	questionSvc service.QuestionService,
	paperSvc service.PaperService,
	uploadSvc service.UploadService,
) *AdminController {
	return &AdminController{
		courseSvc:   courseSvc,
		questionSvc: questionSvc,
		paperSvc:    paperSvc,
		uploadSvc:   uploadSvc,
	}
}

// CreateCourse godoc
// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Param course body dto.CreateCourseRequest true "Course to create"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid course payload"
// @Router /admin/courses [post]
func (ctrl *AdminController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateCourseRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	course, err := ctrl.courseSvc.CreateCourse(req)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create course")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Adds a question to a course's mock pool, or to a paper when paper_id is set. Rejects questions whose normalized text already exists in the course.
// @Tags admin
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question to create"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question payload"
// @Failure 404 {object} dto.ErrorResponse "Course or paper not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate question text in this course"
// @Router /admin/questions [post]
func (ctrl *AdminController) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := ctrl.questionSvc.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Failed to create question")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, question)
}

// CreatePaper godoc
// @Summary Create a past-year paper
// @Tags admin
// @Accept json
// @Produce json
// @Param paper body dto.CreatePaperRequest true "Paper to create"
// @Success 201 {object} dto.PaperResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/papers [post]
func (ctrl *AdminController) CreatePaper(c *gin.Context) {
	var req dto.CreatePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreatePaperRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	paper, err := ctrl.paperSvc.CreatePaper(req)
	if err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Failed to create paper")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, paper)
}

// UploadImage godoc
// @Summary Upload a question image
// @Description Stores the image in the blob store and returns its public URL.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (png, jpg, jpeg, webp, gif)"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported extension"
// @Router /admin/uploads [post]
func (ctrl *AdminController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing form field 'file'"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Could not read uploaded file"})
		return
	}
	defer file.Close()

	url, err := ctrl.uploadSvc.UploadImage(fileHeader.Filename, file)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to store uploaded image")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
