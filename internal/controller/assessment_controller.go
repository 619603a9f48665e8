package controller

import (
	"errors"
	"io"
	"net/http"

	"english_quest_backend/internal/service"
	"english_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AssessmentController drives the learner's study, practice and exam flow.
type AssessmentController struct {
	Assessment *service.AssessmentService
	Generator  *service.GeneratorService
}

func NewAssessmentController(assessment *service.AssessmentService, generator *service.GeneratorService) *AssessmentController {
	return &AssessmentController{Assessment: assessment, Generator: generator}
}

// StartPracticeRequest selects an authored block; omit exerciseIndex for a random set.
// swagger:model StartPracticeRequest
type StartPracticeRequest struct {
	ExerciseIndex *int `json:"exerciseIndex"`
}

// AnswerRequest swagger:model AnswerRequest
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// GoToRequest swagger:model GoToRequest
type GoToRequest struct {
	Index int `json:"index"`
}

// StartStudy godoc
// @Summary 进入学习模式
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Param topicId path string true "主题ID"
// @Success 200 {object} util.Response{data=assessment.State}
// @Failure 404 {object} util.Response "主题不存在"
// @Router /api/topics/{topicId}/study [post]
func (c *AssessmentController) StartStudy(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	state, err := c.Assessment.StartStudy(ctx.Request.Context(), userID, ctx.Param("topicId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// OpenPracticeSelect godoc
// @Summary 练习关卡选择
// @Description 列出练习块、完成情况、最佳成绩以及考试是否解锁
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Param topicId path string true "主题ID"
// @Success 200 {object} util.Response{data=service.PracticeOverview}
// @Failure 422 {object} util.Response "该主题没有练习"
// @Router /api/topics/{topicId}/practice-select [post]
func (c *AssessmentController) OpenPracticeSelect(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	overview, err := c.Assessment.OpenPracticeSelect(ctx.Request.Context(), userID, ctx.Param("topicId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// StartPractice godoc
// @Summary 开始练习
// @Tags 测评
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param topicId path string true "主题ID"
// @Param body body StartPracticeRequest false "练习块"
// @Success 200 {object} util.Response{data=assessment.State}
// @Failure 404 {object} util.Response "练习块不存在"
// @Failure 422 {object} util.Response "该主题没有练习"
// @Router /api/topics/{topicId}/practice [post]
func (c *AssessmentController) StartPractice(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req StartPracticeRequest
	// 请求体可以为空（随机练习），分块传输时 ContentLength 为 -1
	if ctx.Request.Body != nil && ctx.Request.Body != http.NoBody {
		if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	state, err := c.Assessment.StartPractice(ctx.Request.Context(), userID, ctx.Param("topicId"), req.ExerciseIndex)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// StartExam godoc
// @Summary 开始考试
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Param topicId path string true "主题ID"
// @Success 200 {object} util.Response{data=assessment.State}
// @Failure 422 {object} util.Response "该主题没有考试"
// @Router /api/topics/{topicId}/exam [post]
func (c *AssessmentController) StartExam(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	state, err := c.Assessment.StartExam(ctx.Request.Context(), userID, ctx.Param("topicId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// State godoc
// @Summary 当前测评状态
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=assessment.State}
// @Router /api/assessment [get]
func (c *AssessmentController) State(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.Assessment.State(userID))
}

// Answer godoc
// @Summary 作答当前题目
// @Description 练习模式每题只能作答一次并立即显示反馈；考试模式可改写，空答案表示清除
// @Tags 测评
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AnswerRequest true "答案"
// @Success 200 {object} util.Response{data=assessment.State}
// @Failure 422 {object} util.Response "无法作答"
// @Router /api/assessment/answer [post]
func (c *AssessmentController) Answer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	state, err := c.Assessment.Answer(userID, req.Answer)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// GoTo godoc
// @Summary 跳转到指定题目
// @Tags 测评
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GoToRequest true "题目序号"
// @Success 200 {object} util.Response{data=assessment.State}
// @Router /api/assessment/goto [post]
func (c *AssessmentController) GoTo(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req GoToRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.Assessment.GoTo(userID, req.Index))
}

// Next godoc
// @Summary 下一题
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=assessment.State}
// @Failure 422 {object} util.Response "需要先作答"
// @Router /api/assessment/next [post]
func (c *AssessmentController) Next(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	state, err := c.Assessment.Next(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// Prev godoc
// @Summary 上一题
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=assessment.State}
// @Router /api/assessment/prev [post]
func (c *AssessmentController) Prev(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.Assessment.Prev(userID))
}

// Finish godoc
// @Summary 交卷并评分
// @Description 评分、计算经验值、更新联赛与任务并记录历史
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.ExamResult}
// @Failure 422 {object} util.Response "没有进行中的练习或考试"
// @Router /api/assessment/finish [post]
func (c *AssessmentController) Finish(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	result, err := c.Assessment.Finish(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Exit godoc
// @Summary 退出当前活动
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=assessment.State}
// @Router /api/assessment/exit [post]
func (c *AssessmentController) Exit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	state, err := c.Assessment.Exit(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// Comic godoc
// @Summary 生成学习漫画
// @Description 为学习模式中的主题生成一张讲解漫画
// @Tags 测评
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ComicResult}
// @Failure 409 {object} util.Response "已有生成任务"
// @Failure 422 {object} util.Response "生成失败"
// @Router /api/assessment/comic [post]
func (c *AssessmentController) Comic(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	topic, err := c.Assessment.StudyTopic(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	comic, err := c.Generator.GenerateComic(ctx.Request.Context(), topic)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, comic)
}
