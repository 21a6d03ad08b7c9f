package controller

import (
	"strconv"

	"edu_assessment_backend/internal/service"
	"edu_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service       *service.AssessmentService
	DetailService *service.AssessmentDetailService
}

func NewAssessmentController(svc *service.AssessmentService, detailSvc *service.AssessmentDetailService) *AssessmentController {
	return &AssessmentController{Service: svc, DetailService: detailSvc}
}

// @Summary Get the fully composed view of an assessment
// @Description Returns the assessment with its lesson (linked quizzes only), argument groupings, all questions with options, and canonical answers with translations.
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "assessment id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/assessments/{id}/questions/detailed [get]
func (c *AssessmentController) GetQuestionsDetailed(ctx *gin.Context) {
	id, err := util.ParseAssessmentID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	detail, err := c.DetailService.GetQuestionsDetailed(ctx.Request.Context(), id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary Create an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateAssessmentRequest true "assessment fields"
// @Success 201 {object} util.Response
// @Router /api/teacher/assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req service.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.CreateAssessment(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, a)
}

// @Summary Get an assessment
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id, err := util.ParseAssessmentID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	a, err := c.Service.GetAssessment(ctx.Request.Context(), id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, a)
}

// @Summary List assessments
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	as, total, err := c.Service.ListAssessments(ctx.Request.Context(), page, limit)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  as,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Delete an assessment
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "assessment id"
// @Success 200 {object} util.Response
// @Router /api/teacher/assessments/{id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	id, err := util.ParseAssessmentID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	if err := c.Service.DeleteAssessment(ctx.Request.Context(), id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
