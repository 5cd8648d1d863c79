package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionHandler отдает идентичность текущего запроса. Выпуск токенов и
// хранение учетных данных остаются за внешним сервисом авторизации,
// здесь токен только проверяется.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type SessionResponse struct {
	UserID int64 `json:"user_id"`
}

// Show GET RouteGroup + SessionRoute.
func (h *SessionHandler) Show(c *gin.Context) {
	c.JSON(http.StatusOK, SessionResponse{
		UserID: getUserIDFromContext(c),
	})
}
