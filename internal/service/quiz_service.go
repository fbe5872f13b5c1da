package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/yourusername/question-bank/internal/domain/entity"
	"github.com/yourusername/question-bank/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// AllCategoriesID — идентификатор псевдокатегории "все категории"
const AllCategoriesID uint = 0

// IntnFunc возвращает равномерно распределенное число из [0, n).
// Вынесена в параметр сервиса, чтобы тесты могли подставить
// детерминированный источник, не ослабляя боевой контракт.
type IntnFunc func(n int) int

// QuizService выбирает случайные неповторяющиеся вопросы для игры.
// Сервис не хранит состояние между вызовами: набор уже заданных
// вопросов клиент передает в каждом запросе.
type QuizService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	intn         IntnFunc
}

// NewQuizService создает новый сервис викторины.
// При intn == nil используется math/rand.
func NewQuizService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	intn IntnFunc,
) *QuizService {
	if intn == nil {
		intn = rand.Intn
	}
	return &QuizService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		intn:         intn,
	}
}

// NextQuestion возвращает случайный вопрос из пула категории categoryID,
// id которого отсутствует в previousIDs. categoryID == 0 означает пул из
// всех категорий; иначе категория должна существовать (ErrNotFound).
// Пустой пул — ErrNotFound. Исчерпание пула (все кандидаты уже заданы)
// сигнализируется возвратом (nil, nil).
//
// Выбор работает по схеме "выбрать и отклонить": previousIDs применяется
// как фильтр в момент выборки, а не вычитанием из пула заранее. Условие
// остановки сравнивает размеры пула и списка исключений (не мощность их
// пересечения), поэтому при устаревших id вне пула возможно ложное
// исчерпание — поведение исходной системы, сохранено намеренно.
func (s *QuizService) NextQuestion(previousIDs []uint, categoryID uint) (*entity.Question, error) {
	pool, err := s.buildPool(categoryID)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, apperrors.ErrNotFound
	}

	seen := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	for {
		// Проверка исчерпания внутри цикла повторной выборки: без нее
		// отклонение кандидатов зациклилось бы, когда исключения
		// покрывают весь пул. ">=" вместо "==" защищает от вечного
		// цикла при списке исключений длиннее пула.
		if len(previousIDs) >= len(pool) {
			return nil, nil
		}

		candidate := pool[s.intn(len(pool))]
		if _, excluded := seen[candidate.ID]; !excluded {
			return &candidate, nil
		}
	}
}

// buildPool собирает пул кандидатов: все вопросы или вопросы одной категории
func (s *QuizService) buildPool(categoryID uint) ([]entity.Question, error) {
	if categoryID == AllCategoriesID {
		pool, err := s.questionRepo.ListAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}
		return pool, nil
	}

	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category %d: %w", categoryID, err)
	}

	pool, err := s.questionRepo.ListByCategory(category.Ref())
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}
	return pool, nil
}
