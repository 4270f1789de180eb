package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepmint/examcore/internal/controller"
	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/service"
	"github.com/rs/zerolog/log"
)

type CourseController struct {
	courseSvc service.CourseService
}

func NewCourseController(courseSvc service.CourseService) *CourseController {
	return &CourseController{courseSvc: courseSvc}
}

// GetAllCourses godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponse
// @Router /courses [get]
func (ctrl *CourseController) GetAllCourses(c *gin.Context) {
	courses, err := ctrl.courseSvc.GetAllCourses()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list courses")
		c.JSON(controller.StatusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}
