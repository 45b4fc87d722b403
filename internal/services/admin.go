package services

import (
	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type AdminInput struct {
	Username string
	Name     string
	Password string
}

func (s *AdminService) List() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.db.Order("username ASC").Find(&admins).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return admins, nil
}

func (s *AdminService) Create(input AdminInput) (*models.Admin, error) {
	var existing models.Admin
	if err := s.db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("USERNAME_TAKEN", "username already taken")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	admin := models.Admin{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hash,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &admin, nil
}

func (s *AdminService) Update(adminID uint, input AdminInput) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin, adminID).Error; err != nil {
		return nil, apperr.NotFound("ADMIN_NOT_FOUND", "admin not found")
	}

	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		admin.PasswordHash = hash
	}

	if err := s.db.Save(&admin).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &admin, nil
}

func (s *AdminService) Delete(adminID uint) error {
	result := s.db.Delete(&models.Admin{}, adminID)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("ADMIN_NOT_FOUND", "admin not found")
	}
	return nil
}
