package models

import "time"

// Answer lifecycle. Exactly one answer per (student, question) may be active
// at a time; superseded attempts are kept as historical rows. The storage
// layer enforces this with a partial unique index on (student_id, question_id)
// WHERE status = 'active'.
const (
	AnswerStatusActive     = "active"
	AnswerStatusHistorical = "historical"
)

type MultipleChoiceAnswer struct {
	ID                uint                   `gorm:"primaryKey" json:"id"`
	StudentID         uint                   `gorm:"not null;index" json:"student_id"`
	Student           Student                `gorm:"foreignKey:StudentID" json:"-"`
	QuestionID        uint                   `gorm:"not null;index" json:"question_id"`
	Question          MultipleChoiceQuestion `gorm:"foreignKey:QuestionID" json:"-"`
	ChosenOptionIndex int                    `gorm:"not null" json:"chosen_option_index"`
	IsCorrect         bool                   `gorm:"not null" json:"is_correct"`
	Score             int                    `gorm:"not null;default:0" json:"score"`
	Status            string                 `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt         time.Time              `json:"created_at"`
}

type EssayAnswer struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	StudentID  uint          `gorm:"not null;index" json:"student_id"`
	Student    Student       `gorm:"foreignKey:StudentID" json:"-"`
	QuestionID uint          `gorm:"not null;index" json:"question_id"`
	Question   EssayQuestion `gorm:"foreignKey:QuestionID" json:"-"`
	Text       string        `gorm:"type:text;not null" json:"text"`
	Score      *float64      `json:"score"`
	Feedback   *string       `gorm:"type:text" json:"feedback"`
	Status     string        `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Scorable is the shared scoring contract of both answer variants. The
// second return reports whether the answer contributes to an average at all:
// an ungraded essay answer does not.
type Scorable interface {
	Contribution() (float64, bool)
}

func (a MultipleChoiceAnswer) Contribution() (float64, bool) {
	return float64(a.Score), true
}

func (a EssayAnswer) Contribution() (float64, bool) {
	if a.Score == nil {
		return 0, false
	}
	return *a.Score, true
}

// AverageContribution folds a set of answers into their mean, skipping
// non-contributing ones. An empty contributing set averages to 0.
func AverageContribution(answers []Scorable) float64 {
	var sum float64
	var n int
	for _, a := range answers {
		v, ok := a.Contribution()
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
