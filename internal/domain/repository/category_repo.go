package repository

import (
	"github.com/yourusername/question-bank/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями.
// Категории только читаются: справочник заполняется миграциями.
type CategoryRepository interface {
	GetByID(id uint) (*entity.Category, error)
	ListAll() ([]entity.Category, error)
}
