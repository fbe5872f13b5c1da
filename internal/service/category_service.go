package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/question-bank/internal/domain/repository"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// Ключ кеша для справочника категорий
const categoryMapCacheKey = "categories:map"

// Время жизни кешированного справочника. Категории заводятся только
// миграциями, поэтому TTL может быть длинным.
const categoryMapCacheTTL = time.Hour

// CategoryService предоставляет методы для работы со справочником категорий
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
	}
}

// CategoryMap возвращает справочник категорий в виде {id: type}.
// Пустой справочник — условие "не найдено".
func (s *CategoryService) CategoryMap() (map[uint]string, error) {
	if s.cacheRepo != nil {
		cached := make(map[uint]string)
		if err := s.cacheRepo.GetJSON(categoryMapCacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}

	result := make(map[uint]string, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(categoryMapCacheKey, result, categoryMapCacheTTL); err != nil {
			log.Printf("[CategoryService] Не удалось закешировать справочник категорий: %v", err)
		}
	}

	return result, nil
}
