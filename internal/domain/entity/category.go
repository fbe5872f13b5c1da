package entity

import "strconv"

// Category представляет категорию вопросов.
// Справочник только для чтения: категории заводятся миграцией,
// API их не создает и не изменяет.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// Ref возвращает строковый идентификатор категории,
// в том виде, в котором он хранится в Question.Category.
func (c *Category) Ref() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}
