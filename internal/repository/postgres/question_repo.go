package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/question-bank/internal/domain/entity"
	apperrors "github.com/yourusername/question-bank/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос. ID присваивается базой данных.
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос. Для несуществующего id возвращает ErrNotFound.
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListAll возвращает все вопросы в порядке возрастания id
func (r *QuestionRepo) ListAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCategory возвращает вопросы указанной категории в порядке возрастания id
func (r *QuestionRepo) ListByCategory(categoryRef string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryRef).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// SearchByText возвращает вопросы, текст которых содержит подстроку term.
// ILIKE дает регистронезависимое совпадение, порядок — по id.
func (r *QuestionRepo) SearchByText(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("text ILIKE ?", "%"+term+"%").Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CountAll возвращает общее количество вопросов
func (r *QuestionRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}
