package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yourusername/question-bank/internal/domain/entity"
	"github.com/yourusername/question-bank/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// Ключ кеша для общего количества вопросов
const totalQuestionsCacheKey = "questions:total"

// Время жизни кешированного количества вопросов
const totalQuestionsCacheTTL = 5 * time.Minute

// QuestionService предоставляет методы для работы с банком вопросов:
// постраничная выдача, поиск, создание и удаление.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
	}
}

// ListQuestions возвращает страницу вопросов (в порядке возрастания id)
// и общее количество вопросов до пагинации.
// Пустая страница — условие "не найдено": и для пустой коллекции,
// и для страницы за пределами данных (поведение исходной системы).
func (s *QuestionService) ListQuestions(page int) ([]entity.Question, int64, error) {
	selection, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := PaginateQuestions(selection, page, QuestionsPerPage)
	if len(questions) == 0 {
		return nil, 0, apperrors.ErrNotFound
	}

	return questions, int64(len(selection)), nil
}

// SearchQuestions возвращает страницу вопросов, текст которых содержит
// подстроку term без учета регистра, с сохранением порядка по id.
// Пустой term — ошибка клиента, ноль совпадений — "не найдено".
// total считается по всему банку вопросов, не по совпадениям
// (поведение исходной системы).
func (s *QuestionService) SearchQuestions(term string, page int) ([]entity.Question, int64, error) {
	if strings.TrimSpace(term) == "" {
		return nil, 0, apperrors.ErrBadRequest
	}

	selection, err := s.questionRepo.SearchByText(term)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search questions: %w", err)
	}
	if len(selection) == 0 {
		return nil, 0, apperrors.ErrNotFound
	}

	total, err := s.totalQuestions()
	if err != nil {
		return nil, 0, err
	}

	return PaginateQuestions(selection, page, QuestionsPerPage), total, nil
}

// QuestionsByCategory возвращает страницу вопросов указанной категории
// и отображаемое имя категории. Неизвестная категория — ошибка клиента,
// категория без вопросов — "не найдено".
func (s *QuestionService) QuestionsByCategory(categoryID uint, page int) ([]entity.Question, string, int64, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", 0, apperrors.ErrBadRequest
		}
		return nil, "", 0, fmt.Errorf("failed to get category %d: %w", categoryID, err)
	}

	selection, err := s.questionRepo.ListByCategory(category.Ref())
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}

	questions := PaginateQuestions(selection, page, QuestionsPerPage)
	if len(questions) == 0 {
		return nil, "", 0, apperrors.ErrNotFound
	}

	total, err := s.totalQuestions()
	if err != nil {
		return nil, "", 0, err
	}

	return questions, category.Type, total, nil
}

// CreateQuestion создает вопрос и возвращает первую страницу обновленного
// списка вместе с новым общим количеством. ID присваивается хранилищем и
// доступен через question.ID после возврата.
// Неполный вопрос и любая ошибка хранилища — ErrUnprocessable.
func (s *QuestionService) CreateQuestion(question *entity.Question) ([]entity.Question, int64, error) {
	if !question.IsComplete() {
		return nil, 0, apperrors.ErrUnprocessable
	}

	if err := s.questionRepo.Create(question); err != nil {
		log.Printf("[QuestionService] Ошибка создания вопроса: %v", err)
		return nil, 0, apperrors.ErrUnprocessable
	}

	s.invalidateTotal()

	return s.firstPageWithTotal()
}

// DeleteQuestion удаляет вопрос по id и возвращает первую страницу
// обновленного списка вместе с новым общим количеством.
// Несуществующий id — "не найдено", прочие ошибки хранилища — ErrUnprocessable.
func (s *QuestionService) DeleteQuestion(id uint) ([]entity.Question, int64, error) {
	if err := s.questionRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, 0, apperrors.ErrNotFound
		}
		log.Printf("[QuestionService] Ошибка удаления вопроса %d: %v", id, err)
		return nil, 0, apperrors.ErrUnprocessable
	}

	s.invalidateTotal()

	return s.firstPageWithTotal()
}

// firstPageWithTotal возвращает первую страницу всех вопросов и их количество
func (s *QuestionService) firstPageWithTotal() ([]entity.Question, int64, error) {
	selection, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}
	return PaginateQuestions(selection, 1, QuestionsPerPage), int64(len(selection)), nil
}

// totalQuestions возвращает общее количество вопросов, используя кеш.
// Промах или недоступный кеш прозрачно уходят в хранилище.
func (s *QuestionService) totalQuestions() (int64, error) {
	if s.cacheRepo != nil {
		var cached int64
		if err := s.cacheRepo.GetJSON(totalQuestionsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	total, err := s.questionRepo.CountAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(totalQuestionsCacheKey, total, totalQuestionsCacheTTL); err != nil {
			log.Printf("[QuestionService] Не удалось закешировать количество вопросов: %v", err)
		}
	}

	return total, nil
}

// invalidateTotal сбрасывает кешированное количество вопросов после мутации
func (s *QuestionService) invalidateTotal() {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(totalQuestionsCacheKey); err != nil {
		log.Printf("[QuestionService] Не удалось сбросить кеш количества вопросов: %v", err)
	}
}
