package controller

import (
	"edu_assessment_backend/internal/service"
	"edu_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	Service *service.LessonService
}

func NewLessonController(svc *service.LessonService) *LessonController {
	return &LessonController{Service: svc}
}

// @Summary Get a lesson
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	l, err := c.Service.GetLesson(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, l)
}

// @Summary List the lessons of a module
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "module id"
// @Success 200 {object} util.Response
// @Router /api/modules/{id}/lessons [get]
func (c *LessonController) ListByModule(ctx *gin.Context) {
	ls, err := c.Service.ListLessonsByModule(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, ls)
}

// @Summary Upload a lesson video
// @Description Stores the video, probes its duration and records both on the lesson.
// @Tags lessons
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "lesson id"
// @Param video formData file true "video file"
// @Success 200 {object} util.Response
// @Router /api/teacher/lessons/{id}/video [post]
func (c *LessonController) UploadVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	l, err := c.Service.AttachVideo(ctx.Request.Context(), ctx.Param("id"), file)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, l)
}
