package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank/internal/handler/dto"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// respondError отображает типизированную ошибку ядра в HTTP статус
// и единое тело ошибки. Отображение 1:1, без повторов и частичных ответов.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnprocessable):
		status = http.StatusUnprocessableEntity
	default:
		log.Printf("[Handler] Внутренняя ошибка: %v", err)
	}

	c.JSON(status, dto.NewErrorResponse(status))
}
