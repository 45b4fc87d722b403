package models

import "time"

// MultipleChoiceQuestion has 2-5 ordered options and a zero-based
// CorrectOptionIndex into that list.
type MultipleChoiceQuestion struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	QuizID             uint             `gorm:"not null;index" json:"quiz_id"`
	Quiz               Quiz             `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	Text               string           `gorm:"type:text;not null" json:"text"`
	Options            []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
	CorrectOptionIndex int              `gorm:"not null" json:"correct_option_index"`
	IsActive           bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type QuestionOption struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"size:500;not null" json:"text"`
	OrderNum   int    `gorm:"not null;default:0" json:"order_num"`
}

type EssayQuestion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	QuizID    uint      `gorm:"not null;index" json:"quiz_id"`
	Quiz      Quiz      `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
