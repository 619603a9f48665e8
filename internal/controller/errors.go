package controller

import (
	"errors"

	"english_quest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCategoryNotFound),
		errors.Is(err, util.ErrTopicNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrBlockNotFound):
		util.NotFoundWithMessage(ctx, err.Error())
	case errors.Is(err, util.ErrUsernameTaken),
		errors.Is(err, util.ErrDuplicateTopic),
		errors.Is(err, util.ErrDuplicateQuestion),
		errors.Is(err, util.ErrGenerationInProgress):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrNoQuestions),
		errors.Is(err, util.ErrNoExam),
		errors.Is(err, util.ErrNoActiveActivity),
		errors.Is(err, util.ErrAnswerRequired),
		errors.Is(err, util.ErrAlreadyAnswered),
		errors.Is(err, util.ErrInvalidOption),
		errors.Is(err, util.ErrImageGeneration):
		util.Notice(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidName),
		errors.Is(err, util.ErrInvalidRole),
		errors.Is(err, util.ErrInvalidQuestion),
		errors.Is(err, util.ErrInvalidTitle),
		errors.Is(err, util.ErrInvalidTheme):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// currentUserID writes 401 and returns false when the request carries no claims.
func currentUserID(ctx *gin.Context) (string, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return "", false
	}
	return claims.UserID, true
}

func queryInt(ctx *gin.Context, key string, def int) int {
	return util.ParseIntDefault(ctx.Query(key), def)
}
