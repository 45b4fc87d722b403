package services

import (
	"errors"
	"time"

	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) LoginAdmin(username, password string) (string, error) {
	var admin models.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return "", apperr.Unauthorized("INVALID_CREDENTIALS", "invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Unauthorized("INVALID_CREDENTIALS", "invalid username or password")
	}
	return s.GenerateToken(admin.ID, RoleAdmin)
}

func (s *AuthService) LoginStudent(username, password string) (string, *models.Student, error) {
	var student models.Student
	if err := s.db.Where("username = ?", username).First(&student).Error; err != nil {
		return "", nil, apperr.Unauthorized("INVALID_CREDENTIALS", "invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("INVALID_CREDENTIALS", "invalid username or password")
	}
	token, err := s.GenerateToken(student.ID, RoleStudent)
	if err != nil {
		return "", nil, err
	}
	return token, &student, nil
}

func (s *AuthService) GenerateToken(subjectID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken returns the subject id and role of a signed token.
func (s *AuthService) ValidateToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", apperr.Unauthorized("INVALID_TOKEN", "invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", apperr.Unauthorized("INVALID_TOKEN", "invalid claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", apperr.Unauthorized("INVALID_TOKEN", "invalid subject in token")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return 0, "", apperr.Unauthorized("INVALID_TOKEN", "invalid role in token")
	}

	return uint(sub), role, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
