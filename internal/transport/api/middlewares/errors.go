package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal server error"
	}
}

// Errors превращает ошибки контекста в JSON ответ с полем message.
// Текст публичных ошибок уходит клиенту как есть, приватные заменяются
// обезличенным текстом статуса, для 500 сам текст дублируется в detail.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		status := c.Writer.Status()

		body := gin.H{}
		if firstErr.IsType(gin.ErrorTypePublic) {
			body["message"] = firstErr.Error()
		} else {
			body["message"] = statusErrorText(status)
		}
		if status == http.StatusInternalServerError {
			body["detail"] = firstErr.Error()
		}

		c.JSON(status, body)
		c.Abort()
	}
}
