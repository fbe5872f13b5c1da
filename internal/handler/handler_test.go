package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/question-bank/internal/domain/entity"
	"github.com/yourusername/question-bank/internal/handler/dto"
	"github.com/yourusername/question-bank/internal/middleware"
	"github.com/yourusername/question-bank/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================================================
// Моки репозиториев для тестов обработчиков
// (переименованы, чтобы не конфликтовать с моками пакета service)
// ============================================================================

// MockQuestionRepoForHandlers реализует repository.QuestionRepository
type MockQuestionRepoForHandlers struct {
	mock.Mock
}

func (m *MockQuestionRepoForHandlers) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepoForHandlers) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForHandlers) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepoForHandlers) ListAll() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForHandlers) ListByCategory(categoryRef string) ([]entity.Question, error) {
	args := m.Called(categoryRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForHandlers) SearchByText(term string) ([]entity.Question, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepoForHandlers) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepoForHandlers реализует repository.CategoryRepository
type MockCategoryRepoForHandlers struct {
	mock.Mock
}

func (m *MockCategoryRepoForHandlers) GetByID(id uint) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepoForHandlers) ListAll() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

// ============================================================================
// Тестовый роутер: реальные сервисы и маршруты поверх моков репозиториев
// ============================================================================

type testEnv struct {
	router       *gin.Engine
	questionRepo *MockQuestionRepoForHandlers
	categoryRepo *MockCategoryRepoForHandlers
}

func newTestEnv() *testEnv {
	questionRepo := new(MockQuestionRepoForHandlers)
	categoryRepo := new(MockCategoryRepoForHandlers)

	questionService := service.NewQuestionService(questionRepo, categoryRepo, nil)
	categoryService := service.NewCategoryService(categoryRepo, nil)
	quizService := service.NewQuizService(questionRepo, categoryRepo, nil)

	questionHandler := NewQuestionHandler(questionService, categoryService)
	categoryHandler := NewCategoryHandler(categoryService, questionService)
	quizHandler := NewQuizHandler(quizService)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(http.StatusMethodNotAllowed))
	})

	router.GET("/categories", categoryHandler.ListCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"), categoryHandler.QuestionsByCategory)
	router.GET("/questions", questionHandler.ListQuestions)
	router.POST("/questions", questionHandler.CreateQuestion)
	router.DELETE("/questions/:id",
		middleware.ExtractUintParam("id", "questionID"), questionHandler.DeleteQuestion)
	router.POST("/searchQuestions", questionHandler.SearchQuestions)
	router.POST("/quizzes", quizHandler.PlayQuiz)

	return &testEnv{
		router:       router,
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// perform выполняет запрос через тестовый роутер
func (e *testEnv) perform(method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, path, bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// testQuestions создает n вопросов с id 1..n
func testQuestions(n int) []entity.Question {
	questions := make([]entity.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, entity.Question{
			ID:         uint(i),
			Text:       fmt.Sprintf("question %d", i),
			Answer:     fmt.Sprintf("answer %d", i),
			Category:   "1",
			Difficulty: 1,
		})
	}
	return questions
}

// testCategories — стандартный набор категорий для тестов
func testCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}
}
