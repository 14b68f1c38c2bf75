package project

import (
	"errors"

	"github.com/hjstudio/core/internal/models"
	"github.com/hjstudio/core/internal/pkg/pagination"
	"github.com/hjstudio/core/internal/pkg/response"
	"gorm.io/gorm"
)

// CategoryAll is the client-side passthrough value, never stored.
const CategoryAll = "All"

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) scope(category string) *gorm.DB {
	tx := s.db.Model(&models.ProjectModel{}).Order("created_at DESC, id DESC")
	if category != "" && category != CategoryAll {
		tx = tx.Where("category = ?", category)
	}
	return tx
}

func (s *Service) List(q pagination.Query, category string) ([]models.ProjectModel, response.Pagination, error) {
	var items []models.ProjectModel
	pag, err := pagination.Paginate(s.scope(category), q, &items)
	return items, pag, err
}

// ListAll returns every project, newest first, optionally filtered by
// category with an exact match.
func (s *Service) ListAll(category string) ([]models.ProjectModel, error) {
	var items []models.ProjectModel
	err := s.scope(category).Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.ProjectModel, error) {
	var m models.ProjectModel
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) Create(dto *ProjectDTO) (*models.ProjectModel, error) {
	var m models.ProjectModel
	dto.apply(&m)
	return &m, s.db.Create(&m).Error
}

// Replace performs a full-row replace of every editable field; the id and
// created timestamp are preserved.
func (s *Service) Replace(id uint, dto *ProjectDTO) (*models.ProjectModel, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}
	dto.apply(m)
	return m, s.db.Save(m).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.ProjectModel{}, id).Error
}
