package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank/internal/domain/entity"
	"github.com/yourusername/question-bank/internal/handler/dto"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
	"github.com/yourusername/question-bank/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// pageFromQuery извлекает номер страницы из query-параметра.
// Отсутствующее или некорректное значение трактуется как страница 1.
func pageFromQuery(c *gin.Context) int {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

// ListQuestions возвращает страницу вопросов вместе со справочником категорий
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, total, err := h.questionService.ListQuestions(pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	categories, err := h.categoryService.CategoryMap()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: total,
		Categories:     categories,
	})
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Поля-указатели позволяют отличить отсутствующее поле от пустого значения.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *string `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// CreateQuestion обрабатывает запрос на создание вопроса
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrUnprocessable)
		return
	}

	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		respondError(c, apperrors.ErrUnprocessable)
		return
	}

	question := &entity.Question{
		Text:       *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	}

	questions, total, err := h.questionService.CreateQuestion(question)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      questions,
		TotalQuestions: total,
	})
}

// DeleteQuestion обрабатывает запрос на удаление вопроса
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	questions, total, err := h.questionService.DeleteQuestion(questionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{
		Success:        true,
		Deleted:        questionID,
		Questions:      questions,
		TotalQuestions: total,
	})
}

// SearchQuestionsRequest представляет запрос поиска по подстроке текста
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions обрабатывает поиск вопросов по подстроке
// POST /searchQuestions
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrBadRequest)
		return
	}

	questions, total, err := h.questionService.SearchQuestions(req.SearchTerm, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: total,
	})
}
