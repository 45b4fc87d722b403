package models

import "time"

// Student is a mobile-app user. AvgScorePg and AvgScoreEssay are cached
// rollups refreshed by the score aggregator; they are never written from
// anywhere else.
type Student struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	PasswordHash  string    `gorm:"size:255;not null" json:"-"`
	Kelas         string    `gorm:"size:50" json:"kelas,omitempty"`
	AvgScorePg    float64   `gorm:"not null;default:0" json:"avg_score_pg"`
	AvgScoreEssay float64   `gorm:"not null;default:0" json:"avg_score_essay"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
