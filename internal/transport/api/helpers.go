package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/fxdesk/internal/domain"
	"github.com/fsdevblog/fxdesk/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

func getUserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentUserIDKey)
}

// parseIDParam разбирает :id из пути. При мусоре в параметре пишет 400
// в контекст и возвращает false, хендлеру остается только выйти.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, domain.NewValidationError("invalid id %q", c.Param("id"))).
			SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// abortDomainErr единая точка маппинга доменных ошибок на http статусы.
// Валидация - 400, отсутствие записи и пустой список поставщиков - 404,
// дубль уникального поля - 409, все остальное - 500 с приватной ошибкой.
func abortDomainErr(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, domain.ErrNoLinkedSuppliers):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
