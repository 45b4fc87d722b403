package services

import (
	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"gorm.io/gorm"
)

// ScoreService keeps each student's cached average score consistent with
// their current set of active answers. The rollup is a best-effort cache:
// a failed recompute leaves the prior value in place and the next trigger
// self-heals it.
type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

// Recompute re-derives the student's rollup for one quiz type from their
// active answers and writes it in a single column update. Multiple-choice
// averages land on a 0-1 scale, essay averages on a 0-100 scale; ungraded
// essay answers are excluded from both numerator and denominator.
func (s *ScoreService) Recompute(studentID uint, quizType string) error {
	var column string
	var scorables []models.Scorable

	switch quizType {
	case models.QuizTypePG:
		var answers []models.MultipleChoiceAnswer
		if err := s.db.Where("student_id = ? AND status = ?", studentID, models.AnswerStatusActive).
			Find(&answers).Error; err != nil {
			return apperr.Internal(err)
		}
		for _, a := range answers {
			scorables = append(scorables, a)
		}
		column = "avg_score_pg"

	case models.QuizTypeEssay:
		var answers []models.EssayAnswer
		if err := s.db.Where("student_id = ? AND status = ?", studentID, models.AnswerStatusActive).
			Find(&answers).Error; err != nil {
			return apperr.Internal(err)
		}
		for _, a := range answers {
			scorables = append(scorables, a)
		}
		column = "avg_score_essay"

	default:
		return apperr.Validation("INVALID_QUIZ_TYPE", "unknown quiz type: %s", quizType)
	}

	avg := models.AverageContribution(scorables)

	result := s.db.Model(&models.Student{}).Where("id = ?", studentID).Update(column, avg)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("STUDENT_NOT_FOUND", "student not found")
	}
	return nil
}
