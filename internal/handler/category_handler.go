package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-bank/internal/handler/dto"
	"github.com/yourusername/question-bank/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories возвращает справочник категорий
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.CategoryMap()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:         true,
		Categories:      categories,
		TotalCategories: len(categories),
	})
}

// QuestionsByCategory возвращает страницу вопросов одной категории
// GET /categories/:id/questions
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	questions, categoryType, total, err := h.questionService.QuestionsByCategory(categoryID, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionListResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		CurrentCategory: categoryType,
	})
}
