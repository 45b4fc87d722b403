package services

import (
	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"gorm.io/gorm"
)

type MateriService struct {
	db *gorm.DB
}

func NewMateriService(db *gorm.DB) *MateriService {
	return &MateriService{db: db}
}

type MateriInput struct {
	Title       string
	Description string
	FileURL     string
	VideoURL    string
}

func (s *MateriService) List(activeOnly bool) ([]models.Materi, error) {
	q := s.db.Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var materi []models.Materi
	if err := q.Find(&materi).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return materi, nil
}

func (s *MateriService) Get(materiID uint, activeOnly bool) (*models.Materi, error) {
	q := s.db.Where("id = ?", materiID)
	if activeOnly {
		q = q.Where("is_active = ?", true).
			Preload("Quizzes", func(db *gorm.DB) *gorm.DB {
				return db.Where("is_active = ?", true).Order("created_at ASC")
			})
	} else {
		q = q.Preload("Quizzes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
	}

	var materi models.Materi
	if err := q.First(&materi).Error; err != nil {
		return nil, apperr.NotFound("MATERI_NOT_FOUND", "materi not found")
	}
	return &materi, nil
}

func (s *MateriService) Create(input MateriInput) (*models.Materi, error) {
	materi := models.Materi{
		Title:       input.Title,
		Description: input.Description,
		FileURL:     input.FileURL,
		VideoURL:    input.VideoURL,
		IsActive:    true,
	}
	if err := s.db.Create(&materi).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &materi, nil
}

func (s *MateriService) Update(materiID uint, input MateriInput) (*models.Materi, error) {
	var materi models.Materi
	if err := s.db.First(&materi, materiID).Error; err != nil {
		return nil, apperr.NotFound("MATERI_NOT_FOUND", "materi not found")
	}

	materi.Title = input.Title
	materi.Description = input.Description
	materi.FileURL = input.FileURL
	materi.VideoURL = input.VideoURL
	if err := s.db.Save(&materi).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &materi, nil
}

// SetActive archives or restores a materi. Archiving hides it (and its
// quizzes) from the mobile API without touching stored answers.
func (s *MateriService) SetActive(materiID uint, active bool) (*models.Materi, error) {
	var materi models.Materi
	if err := s.db.First(&materi, materiID).Error; err != nil {
		return nil, apperr.NotFound("MATERI_NOT_FOUND", "materi not found")
	}

	materi.IsActive = active
	if err := s.db.Save(&materi).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &materi, nil
}
