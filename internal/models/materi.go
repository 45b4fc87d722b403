package models

import "time"

// Materi is a content unit (lesson module) that owns quizzes.
type Materi struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	FileURL     string    `gorm:"size:500" json:"file_url,omitempty"`
	VideoURL    string    `gorm:"size:500" json:"video_url,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	Quizzes     []Quiz    `gorm:"foreignKey:MateriID" json:"quizzes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
