package controller

import (
	"english_quest_backend/internal/service"
	"english_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController serves the curriculum to learners and its editing endpoints to admins.
type ContentController struct {
	Content   *service.ContentService
	Generator *service.GeneratorService
}

func NewContentController(content *service.ContentService, generator *service.GeneratorService) *ContentController {
	return &ContentController{Content: content, Generator: generator}
}

// CategoryRequest swagger:model CategoryRequest
type CategoryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// TopicRequest swagger:model TopicRequest
type TopicRequest struct {
	Title string `json:"title" binding:"required"`
}

// MoveRequest swagger:model MoveRequest
type MoveRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// GenerateTheoryRequest swagger:model GenerateTheoryRequest
type GenerateTheoryRequest struct {
	Save bool `json:"save"`
}

// GenerateQuestionsRequest swagger:model GenerateQuestionsRequest
type GenerateQuestionsRequest struct {
	Count      int    `json:"count" binding:"omitempty,min=1,max=20"`
	Difficulty string `json:"difficulty"`
	Save       bool   `json:"save"`
}

// ListCategories godoc
// @Summary 课程目录
// @Tags 内容
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/categories [get]
func (c *ContentController) ListCategories(ctx *gin.Context) {
	categories, err := c.Content.Categories()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// GetTopic godoc
// @Summary 主题详情
// @Tags 内容
// @Produce json
// @Security BearerAuth
// @Param topicId path string true "主题ID"
// @Success 200 {object} util.Response{data=model.Topic}
// @Failure 404 {object} util.Response "主题不存在"
// @Router /api/topics/{topicId} [get]
func (c *ContentController) GetTopic(ctx *gin.Context) {
	topic, err := c.Content.Topic(ctx.Param("topicId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}

// CreateCategory godoc
// @Summary 新建分类
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CategoryRequest true "分类"
// @Success 201 {object} util.Response{data=model.Category}
// @Router /api/admin/categories [post]
func (c *ContentController) CreateCategory(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	category, err := c.Content.CreateCategory(ctx.Request.Context(), req.Title)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// UpdateCategory godoc
// @Summary 修改分类标题和描述
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param body body CategoryRequest true "分类"
// @Success 200 {object} util.Response{data=model.Category}
// @Router /api/admin/categories/{categoryId} [put]
func (c *ContentController) UpdateCategory(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	category, err := c.Content.UpdateCategory(ctx.Request.Context(), ctx.Param("categoryId"), req.Title, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// DeleteCategory godoc
// @Summary 删除分类及其主题
// @Tags 内容管理
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Success 200 {object} util.Response
// @Router /api/admin/categories/{categoryId} [delete]
func (c *ContentController) DeleteCategory(ctx *gin.Context) {
	if err := c.Content.DeleteCategory(ctx.Request.Context(), ctx.Param("categoryId")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateTopic godoc
// @Summary 新建主题
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param body body TopicRequest true "主题"
// @Success 201 {object} util.Response{data=model.Topic}
// @Router /api/admin/categories/{categoryId}/topics [post]
func (c *ContentController) CreateTopic(ctx *gin.Context) {
	var req TopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	topic, err := c.Content.CreateTopic(ctx.Request.Context(), ctx.Param("categoryId"), req.Title)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, topic)
}

// SaveTopic godoc
// @Summary 保存主题内容
// @Description 标题、描述、图标、理论和题库整体替换
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param topicId path string true "主题ID"
// @Param body body service.TopicInput true "主题内容"
// @Success 200 {object} util.Response{data=model.Topic}
// @Router /api/admin/categories/{categoryId}/topics/{topicId} [put]
func (c *ContentController) SaveTopic(ctx *gin.Context) {
	var req service.TopicInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	topic, err := c.Content.SaveTopic(ctx.Request.Context(), ctx.Param("categoryId"), ctx.Param("topicId"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}

// MoveTopic godoc
// @Summary 调整主题顺序
// @Tags 内容管理
// @Accept json
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param topicId path string true "主题ID"
// @Param body body MoveRequest true "方向"
// @Success 200 {object} util.Response
// @Router /api/admin/categories/{categoryId}/topics/{topicId}/move [post]
func (c *ContentController) MoveTopic(ctx *gin.Context) {
	var req MoveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Content.MoveTopic(ctx.Request.Context(), ctx.Param("categoryId"), ctx.Param("topicId"), req.Direction); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// DeleteTopic godoc
// @Summary 删除主题
// @Tags 内容管理
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param topicId path string true "主题ID"
// @Success 200 {object} util.Response
// @Router /api/admin/categories/{categoryId}/topics/{topicId} [delete]
func (c *ContentController) DeleteTopic(ctx *gin.Context) {
	if err := c.Content.DeleteTopic(ctx.Request.Context(), ctx.Param("categoryId"), ctx.Param("topicId")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AddQuestion godoc
// @Summary 添加题目
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param topicId path string true "主题ID"
// @Param body body service.QuestionInput true "题目"
// @Success 201 {object} util.Response{data=model.Question}
// @Router /api/admin/categories/{categoryId}/topics/{topicId}/questions [post]
func (c *ContentController) AddQuestion(ctx *gin.Context) {
	var req service.QuestionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q, err := c.Content.AddQuestion(ctx.Request.Context(), ctx.Param("categoryId"), ctx.Param("topicId"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags 内容管理
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param topicId path string true "主题ID"
// @Param questionId path string true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/admin/categories/{categoryId}/topics/{topicId}/questions/{questionId} [delete]
func (c *ContentController) DeleteQuestion(ctx *gin.Context) {
	err := c.Content.DeleteQuestion(ctx.Request.Context(), ctx.Param("categoryId"), ctx.Param("topicId"), ctx.Param("questionId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// MoveQuestion godoc
// @Summary 调整题目顺序
// @Description 练习块按题库顺序划分，移动题目会改变其所在的块
// @Tags 内容管理
// @Accept json
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param topicId path string true "主题ID"
// @Param questionId path string true "题目ID"
// @Param body body MoveRequest true "方向"
// @Success 200 {object} util.Response
// @Router /api/admin/categories/{categoryId}/topics/{topicId}/questions/{questionId}/move [post]
func (c *ContentController) MoveQuestion(ctx *gin.Context) {
	var req MoveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	err := c.Content.MoveQuestion(ctx.Request.Context(), ctx.Param("categoryId"), ctx.Param("topicId"), ctx.Param("questionId"), req.Direction)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GenerateTheory godoc
// @Summary AI 生成理论草稿
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param topicId path string true "主题ID"
// @Param body body GenerateTheoryRequest false "是否保存"
// @Success 200 {object} util.Response{data=map[string]string}
// @Failure 409 {object} util.Response "已有生成任务"
// @Router /api/admin/categories/{categoryId}/topics/{topicId}/generate/theory [post]
func (c *ContentController) GenerateTheory(ctx *gin.Context) {
	var req GenerateTheoryRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	theory, err := c.Generator.DraftTheory(ctx.Request.Context(), ctx.Param("categoryId"), ctx.Param("topicId"), req.Save)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"theory": theory})
}

// GenerateQuestions godoc
// @Summary AI 生成题目
// @Tags 内容管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categoryId path string true "分类ID"
// @Param topicId path string true "主题ID"
// @Param body body GenerateQuestionsRequest false "数量、难度、是否保存"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 409 {object} util.Response "已有生成任务"
// @Router /api/admin/categories/{categoryId}/topics/{topicId}/generate/questions [post]
func (c *ContentController) GenerateQuestions(ctx *gin.Context) {
	var req GenerateQuestionsRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	questions, err := c.Generator.DraftQuestions(ctx.Request.Context(), ctx.Param("categoryId"), ctx.Param("topicId"),
		req.Count, service.ParseDifficulty(req.Difficulty), req.Save)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}
