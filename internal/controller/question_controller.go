package controller

import (
	"edu_assessment_backend/internal/service"
	"edu_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateQuestionRequest true "question fields"
// @Success 201 {object} util.Response
// @Router /api/teacher/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req service.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, q)
}

// @Summary Get a question with its options
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	q, err := c.Service.GetQuestion(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, q)
}

// @Summary List the questions of an assessment
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id}/questions [get]
func (c *QuestionController) ListByAssessment(ctx *gin.Context) {
	id, err := util.ParseAssessmentID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	qs, err := c.Service.ListQuestionsByAssessment(ctx.Request.Context(), id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, qs)
}

// @Summary Add an option to a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Param body body service.CreateOptionRequest true "option fields"
// @Success 201 {object} util.Response
// @Router /api/teacher/questions/{id}/options [post]
func (c *QuestionController) CreateOption(ctx *gin.Context) {
	var req service.CreateOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	opt, err := c.Service.CreateOption(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, opt)
}

// @Summary List the options of a question
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Success 200 {object} util.Response
// @Router /api/questions/{id}/options [get]
func (c *QuestionController) ListOptions(ctx *gin.Context) {
	opts, err := c.Service.ListOptions(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, opts)
}
