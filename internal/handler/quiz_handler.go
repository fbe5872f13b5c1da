package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank/internal/handler/dto"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
	"github.com/yourusername/question-bank/internal/service"
)

// QuizHandler обрабатывает игровые запросы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryRequest представляет выбранную категорию игры.
// ID == 0 означает "все категории".
type QuizCategoryRequest struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// PlayQuizRequest представляет запрос очередного вопроса игры.
// Сервер не хранит состояние сессии: клиент передает список уже
// заданных вопросов в каждом запросе. Поля-указатели позволяют
// отличить отсутствующее поле от пустого значения.
type PlayQuizRequest struct {
	PreviousQuestions *[]uint              `json:"previous_questions"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
}

// PlayQuiz возвращает случайный еще не заданный вопрос выбранной категории.
// При исчерпании пула отвечает {success: true} без вопроса.
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrBadRequest)
		return
	}

	if req.PreviousQuestions == nil || req.QuizCategory == nil {
		respondError(c, apperrors.ErrBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(*req.PreviousQuestions, req.QuizCategory.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizResponse{
		Success:  true,
		Question: question,
	})
}
