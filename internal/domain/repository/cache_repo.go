package repository

import "time"

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Set сохраняет значение в кеше
	Set(key string, value interface{}, expiration time.Duration) error

	// Get получает значение из кеша
	Get(key string) (string, error)

	// Delete удаляет значение из кеша
	Delete(key string) error

	// SetJSON сохраняет структуру JSON в кеше
	SetJSON(key string, value interface{}, expiration time.Duration) error

	// GetJSON получает структуру JSON из кеша
	GetJSON(key string, dest interface{}) error
}
