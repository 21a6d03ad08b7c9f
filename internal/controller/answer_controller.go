package controller

import (
	"edu_assessment_backend/internal/service"
	"edu_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	Service *service.AnswerService
}

func NewAnswerController(svc *service.AnswerService) *AnswerController {
	return &AnswerController{Service: svc}
}

// @Summary Attach the canonical answer to a question
// @Tags answers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Param body body service.CreateAnswerRequest true "answer fields"
// @Success 201 {object} util.Response
// @Router /api/teacher/questions/{id}/answer [post]
func (c *AnswerController) CreateAnswer(ctx *gin.Context) {
	var req service.CreateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.CreateAnswer(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, a)
}

// @Summary Get the canonical answer of a question
// @Tags answers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Success 200 {object} util.Response
// @Router /api/questions/{id}/answer [get]
func (c *AnswerController) GetAnswer(ctx *gin.Context) {
	a, err := c.Service.GetAnswerByQuestion(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, a)
}
