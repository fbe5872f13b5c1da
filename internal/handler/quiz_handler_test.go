package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/question-bank/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// ============================================================================
// POST /quizzes
// ============================================================================

func TestPlayQuiz_ReturnsUnseenQuestion(t *testing.T) {
	// Arrange
	env := newTestEnv()
	env.questionRepo.On("ListAll").Return(testQuestions(5), nil)

	body := map[string]interface{}{
		"previous_questions": []uint{1, 2},
		"quiz_category":      map[string]interface{}{"id": 0, "type": "click"},
	}

	// Act & Assert: серия попыток, выбор никогда не повторяет заданное
	for trial := 0; trial < 30; trial++ {
		w := env.perform("POST", "/quizzes", body)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseJSONResponse(t, w)
		assert.Equal(t, true, resp["success"])

		question := resp["question"].(map[string]interface{})
		id := question["id"].(float64)
		assert.NotContains(t, []float64{1, 2}, id, "Вопрос не должен входить в previous_questions")
	}
}

func TestPlayQuiz_SingleCandidate(t *testing.T) {
	// Arrange: валиден только id 5 — выбор детерминирован
	env := newTestEnv()
	env.questionRepo.On("ListAll").Return(testQuestions(5), nil)

	body := map[string]interface{}{
		"previous_questions": []uint{1, 2, 3, 4},
		"quiz_category":      map[string]interface{}{"id": 0, "type": "click"},
	}

	// Act & Assert
	for trial := 0; trial < 20; trial++ {
		w := env.perform("POST", "/quizzes", body)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseJSONResponse(t, w)
		question := resp["question"].(map[string]interface{})
		assert.Equal(t, float64(5), question["id"])
	}
}

func TestPlayQuiz_Exhausted(t *testing.T) {
	// Arrange: все вопросы пула уже заданы
	env := newTestEnv()
	env.questionRepo.On("ListAll").Return(testQuestions(5), nil)

	body := map[string]interface{}{
		"previous_questions": []uint{1, 2, 3, 4, 5},
		"quiz_category":      map[string]interface{}{"id": 0, "type": "click"},
	}

	// Act
	w := env.perform("POST", "/quizzes", body)

	// Assert: success без ключа question
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.NotContains(t, resp, "question", "При исчерпании пула ключ question отсутствует")
}

func TestPlayQuiz_CategoryPool(t *testing.T) {
	// Arrange
	env := newTestEnv()
	env.categoryRepo.On("GetByID", uint(2)).Return(&entity.Category{ID: 2, Type: "Art"}, nil)
	env.questionRepo.On("ListByCategory", "2").Return([]entity.Question{
		{ID: 7, Text: "q7", Answer: "a", Category: "2", Difficulty: 1},
	}, nil)

	body := map[string]interface{}{
		"previous_questions": []uint{},
		"quiz_category":      map[string]interface{}{"id": 2, "type": "Art"},
	}

	// Act
	w := env.perform("POST", "/quizzes", body)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	question := resp["question"].(map[string]interface{})
	assert.Equal(t, float64(7), question["id"])
	assert.Equal(t, "2", question["category"])
}

func TestPlayQuiz_MissingFields(t *testing.T) {
	// Arrange
	env := newTestEnv()

	testCases := []struct {
		name string
		body map[string]interface{}
	}{
		{"нет previous_questions", map[string]interface{}{
			"quiz_category": map[string]interface{}{"id": 0, "type": "click"},
		}},
		{"нет quiz_category", map[string]interface{}{
			"previous_questions": []uint{},
		}},
		{"пустое тело", map[string]interface{}{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := env.perform("POST", "/quizzes", tc.body)

			// Assert
			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, "bad request", resp["message"])
		})
	}
}

func TestPlayQuiz_UnknownCategory(t *testing.T) {
	// Arrange
	env := newTestEnv()
	env.categoryRepo.On("GetByID", uint(42)).Return(nil, apperrors.ErrNotFound)

	body := map[string]interface{}{
		"previous_questions": []uint{},
		"quiz_category":      map[string]interface{}{"id": 42, "type": "Ghost"},
	}

	// Act
	w := env.perform("POST", "/quizzes", body)

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, "Not Found", resp["message"])
}

func TestPlayQuiz_EmptyCategoryPool(t *testing.T) {
	// Arrange: категория существует, но вопросов в ней нет
	env := newTestEnv()
	env.categoryRepo.On("GetByID", uint(1)).Return(&entity.Category{ID: 1, Type: "Science"}, nil)
	env.questionRepo.On("ListByCategory", "1").Return([]entity.Question{}, nil)

	body := map[string]interface{}{
		"previous_questions": []uint{},
		"quiz_category":      map[string]interface{}{"id": 1, "type": "Science"},
	}

	// Act
	w := env.perform("POST", "/quizzes", body)

	// Assert: пустой пул отклоняется до выборки
	assert.Equal(t, http.StatusNotFound, w.Code)
}
