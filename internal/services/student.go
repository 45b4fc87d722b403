package services

import (
	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"gorm.io/gorm"
)

type StudentService struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

type StudentInput struct {
	Username string
	Name     string
	Password string
	Kelas    string
}

func (s *StudentService) List() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Order("username ASC").Find(&students).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return students, nil
}

func (s *StudentService) Get(studentID uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.First(&student, studentID).Error; err != nil {
		return nil, apperr.NotFound("STUDENT_NOT_FOUND", "student not found")
	}
	return &student, nil
}

func (s *StudentService) Create(input StudentInput) (*models.Student, error) {
	var existing models.Student
	if err := s.db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("USERNAME_TAKEN", "username already taken")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	student := models.Student{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hash,
		Kelas:        input.Kelas,
	}
	if err := s.db.Create(&student).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &student, nil
}

func (s *StudentService) Update(studentID uint, input StudentInput) (*models.Student, error) {
	var student models.Student
	if err := s.db.First(&student, studentID).Error; err != nil {
		return nil, apperr.NotFound("STUDENT_NOT_FOUND", "student not found")
	}

	if input.Username != "" && input.Username != student.Username {
		var existing models.Student
		if err := s.db.Where("username = ? AND id != ?", input.Username, studentID).
			First(&existing).Error; err == nil {
			return nil, apperr.Conflict("USERNAME_TAKEN", "username already taken")
		}
		student.Username = input.Username
	}
	if input.Name != "" {
		student.Name = input.Name
	}
	if input.Kelas != "" {
		student.Kelas = input.Kelas
	}
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		student.PasswordHash = hash
	}

	if err := s.db.Save(&student).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &student, nil
}

// Delete removes a student account. Rejected while any answer still
// references the student; archive the materi instead if the history must go.
func (s *StudentService) Delete(studentID uint) error {
	var student models.Student
	if err := s.db.First(&student, studentID).Error; err != nil {
		return apperr.NotFound("STUDENT_NOT_FOUND", "student not found")
	}

	var pgCount, essayCount int64
	s.db.Model(&models.MultipleChoiceAnswer{}).Where("student_id = ?", studentID).Count(&pgCount)
	s.db.Model(&models.EssayAnswer{}).Where("student_id = ?", studentID).Count(&essayCount)
	if pgCount > 0 || essayCount > 0 {
		return apperr.Conflict("STUDENT_HAS_ANSWERS", "student has recorded answers and cannot be deleted")
	}

	if err := s.db.Delete(&student).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}
