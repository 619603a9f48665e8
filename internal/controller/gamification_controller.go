package controller

import (
	"english_quest_backend/internal/service"
	"english_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	Leaderboard *service.LeaderboardService
	Missions    *service.MissionService
}

func NewGamificationController(leaderboard *service.LeaderboardService, missions *service.MissionService) *GamificationController {
	return &GamificationController{Leaderboard: leaderboard, Missions: missions}
}

// GetLeaderboard godoc
// @Summary 排行榜
// @Description 按经验值排序，附带当前用户排名和联赛表
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回条数，0 为全部" default(20)
// @Success 200 {object} util.Response{data=service.Leaderboard}
// @Router /api/leaderboard [get]
func (c *GamificationController) GetLeaderboard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.Leaderboard.Leaderboard(userID, queryInt(ctx, "limit", 20)))
}

// ListMissions godoc
// @Summary 任务列表
// @Tags 游戏化
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Mission}
// @Router /api/missions [get]
func (c *GamificationController) ListMissions(ctx *gin.Context) {
	util.Success(ctx, c.Missions.List())
}
