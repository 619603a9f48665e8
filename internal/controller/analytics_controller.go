package controller

import (
	"english_quest_backend/internal/service"
	"english_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// History godoc
// @Summary 练习与考试历史
// @Description 当前用户的作答记录，按时间倒序分页，附带掌握度徽章
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/progress/history [get]
func (c *AnalyticsController) History(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.AnalyticsService.History(userID, queryInt(ctx, "page", 1), queryInt(ctx, "limit", 20)))
}

// Stats godoc
// @Summary 学习统计
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.ProgressStats}
// @Router /api/progress/stats [get]
func (c *AnalyticsController) Stats(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.AnalyticsService.Stats(userID))
}

// StudentReport godoc
// @Summary 学生学习报告
// @Description 管理员查看某个学生的统计、历史和学习时长
// @Tags 学习分析
// @Produce json
// @Security BearerAuth
// @Param userId path string true "学生ID"
// @Success 200 {object} util.Response{data=service.StudentReport}
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/admin/analytics/students/{userId} [get]
func (c *AnalyticsController) StudentReport(ctx *gin.Context) {
	report, err := c.AnalyticsService.StudentReport(ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
