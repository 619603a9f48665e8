package controller

import (
	"english_quest_backend/internal/model"
	"english_quest_backend/internal/service"
	"english_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// CreateUserRequest swagger:model CreateUserRequest
type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"omitempty,oneof=student admin"`
}

// ListUsers godoc
// @Summary 用户列表
// @Tags 用户管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	util.Success(ctx, c.UserService.List())
}

// CreateUser godoc
// @Summary 添加用户
// @Description 用户名为去掉空白的小写姓名
// @Tags 用户管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateUserRequest true "用户"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response "用户名已存在"
// @Router /api/admin/users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.UserService.Create(ctx.Request.Context(), req.Name, model.Role(req.Role))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// DeleteUser godoc
// @Summary 删除用户
// @Tags 用户管理
// @Security BearerAuth
// @Param id path string true "用户ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "不能删除自己"
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	actorID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	if err := c.UserService.Delete(ctx.Request.Context(), actorID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
