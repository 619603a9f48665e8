package controller

import (
	"english_quest_backend/internal/service"
	"english_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	PreferenceService *service.PreferenceService
}

func NewPreferenceController(preferenceService *service.PreferenceService) *PreferenceController {
	return &PreferenceController{PreferenceService: preferenceService}
}

// ThemeRequest swagger:model ThemeRequest
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// GetTheme godoc
// @Summary 界面主题
// @Tags 偏好设置
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=map[string]string}
// @Router /api/preferences/theme [get]
func (c *PreferenceController) GetTheme(ctx *gin.Context) {
	util.Success(ctx, gin.H{"theme": c.PreferenceService.Theme()})
}

// SetTheme godoc
// @Summary 设置界面主题
// @Tags 偏好设置
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ThemeRequest true "light 或 dark"
// @Success 200 {object} util.Response{data=map[string]string}
// @Failure 400 {object} util.Response "主题无效"
// @Router /api/preferences/theme [put]
func (c *PreferenceController) SetTheme(ctx *gin.Context) {
	var req ThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.PreferenceService.SetTheme(ctx.Request.Context(), req.Theme); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"theme": req.Theme})
}
