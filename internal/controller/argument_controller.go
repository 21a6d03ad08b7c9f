package controller

import (
	"edu_assessment_backend/internal/service"
	"edu_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ArgumentController struct {
	Service *service.ArgumentService
}

func NewArgumentController(svc *service.ArgumentService) *ArgumentController {
	return &ArgumentController{Service: svc}
}

// @Summary Create a topic grouping
// @Tags arguments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateArgumentRequest true "argument fields"
// @Success 201 {object} util.Response
// @Router /api/teacher/arguments [post]
func (c *ArgumentController) CreateArgument(ctx *gin.Context) {
	var req service.CreateArgumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.CreateArgument(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, a)
}

// @Summary Get a topic grouping
// @Tags arguments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "argument id"
// @Success 200 {object} util.Response
// @Router /api/arguments/{id} [get]
func (c *ArgumentController) GetArgument(ctx *gin.Context) {
	a, err := c.Service.GetArgument(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, a)
}

// @Summary List the topic groupings of an assessment
// @Tags arguments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id}/arguments [get]
func (c *ArgumentController) ListByAssessment(ctx *gin.Context) {
	id, err := util.ParseAssessmentID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	args, err := c.Service.ListArgumentsByAssessment(ctx.Request.Context(), id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, args)
}
