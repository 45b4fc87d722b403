package models

import "time"

// Quiz belongs to a Materi. Its type is fixed at creation and every question
// under it must be of the matching variant; a quiz never mixes variants.
type Quiz struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MateriID  uint      `gorm:"not null;index" json:"materi_id"`
	Materi    Materi    `gorm:"foreignKey:MateriID;constraint:OnDelete:CASCADE" json:"-"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	QuizTypePG    = "MULTIPLE_CHOICE"
	QuizTypeEssay = "ESSAY"
)
