package services

import (
	"errors"
	"log"

	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"gorm.io/gorm"
)

// AnswerService persists a student's answer to one question exactly once,
// computing objective correctness where possible. Single-attempt policy:
// a second submission for the same (student, question) is rejected with a
// conflict, never silently overwritten.
type AnswerService struct {
	db    *gorm.DB
	score *ScoreService
}

func NewAnswerService(db *gorm.DB, score *ScoreService) *AnswerService {
	return &AnswerService{db: db, score: score}
}

func (s *AnswerService) SubmitMultipleChoice(studentID, questionID uint, chosenOptionIndex int) (*models.MultipleChoiceAnswer, error) {
	var question models.MultipleChoiceQuestion
	if err := s.db.Preload("Options").Preload("Quiz").
		Where("id = ? AND is_active = ?", questionID, true).
		First(&question).Error; err != nil {
		return nil, apperr.NotFound("QUESTION_NOT_FOUND", "question not found")
	}
	if !question.Quiz.IsActive {
		return nil, apperr.NotFound("QUESTION_NOT_FOUND", "question not found")
	}

	if chosenOptionIndex < 0 || chosenOptionIndex >= len(question.Options) {
		return nil, apperr.Validation("INVALID_OPTION", "chosen option index out of range")
	}

	var existing models.MultipleChoiceAnswer
	if err := s.db.Where("student_id = ? AND question_id = ? AND status = ?",
		studentID, questionID, models.AnswerStatusActive).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("ANSWER_EXISTS", "question already answered")
	}

	isCorrect := chosenOptionIndex == question.CorrectOptionIndex
	score := 0
	if isCorrect {
		score = 1
	}

	answer := models.MultipleChoiceAnswer{
		StudentID:         studentID,
		QuestionID:        questionID,
		ChosenOptionIndex: chosenOptionIndex,
		IsCorrect:         isCorrect,
		Score:             score,
		Status:            models.AnswerStatusActive,
	}
	if err := s.db.Create(&answer).Error; err != nil {
		// The partial unique index resolves a double-submit race: the
		// loser lands here instead of creating a second active row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("ANSWER_EXISTS", "question already answered")
		}
		return nil, apperr.Internal(err)
	}

	// The answer row is the source of truth; the rollup is a best-effort
	// cache, so a recompute failure is logged and never unwinds the write.
	if err := s.score.Recompute(studentID, models.QuizTypePG); err != nil {
		log.Printf("recompute pg score for student %d failed: %v", studentID, err)
	}

	return &answer, nil
}

func (s *AnswerService) SubmitEssay(studentID, questionID uint, text string) (*models.EssayAnswer, error) {
	var question models.EssayQuestion
	if err := s.db.Preload("Quiz").
		Where("id = ? AND is_active = ?", questionID, true).
		First(&question).Error; err != nil {
		return nil, apperr.NotFound("QUESTION_NOT_FOUND", "question not found")
	}
	if !question.Quiz.IsActive {
		return nil, apperr.NotFound("QUESTION_NOT_FOUND", "question not found")
	}

	var existing models.EssayAnswer
	if err := s.db.Where("student_id = ? AND question_id = ? AND status = ?",
		studentID, questionID, models.AnswerStatusActive).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("ANSWER_EXISTS", "question already answered")
	}

	// Essay answers start ungraded; there is nothing to average yet, so no
	// aggregator trigger here.
	answer := models.EssayAnswer{
		StudentID:  studentID,
		QuestionID: questionID,
		Text:       text,
		Status:     models.AnswerStatusActive,
	}
	if err := s.db.Create(&answer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("ANSWER_EXISTS", "question already answered")
		}
		return nil, apperr.Internal(err)
	}

	return &answer, nil
}

// GradeEssay records an operator-supplied score and feedback. Re-grading is
// allowed and overwrites; there is no ungrade transition.
func (s *AnswerService) GradeEssay(answerID uint, score float64, feedback string) (*models.EssayAnswer, error) {
	if score < 0 || score > 100 {
		return nil, apperr.Validation("INVALID_SCORE", "score must be between 0 and 100")
	}

	var answer models.EssayAnswer
	if err := s.db.First(&answer, answerID).Error; err != nil {
		return nil, apperr.NotFound("ANSWER_NOT_FOUND", "answer not found")
	}

	answer.Score = &score
	answer.Feedback = &feedback
	if err := s.db.Save(&answer).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	if err := s.score.Recompute(answer.StudentID, models.QuizTypeEssay); err != nil {
		log.Printf("recompute essay score for student %d failed: %v", answer.StudentID, err)
	}

	return &answer, nil
}

// StudentPgAnswers returns a student's active multiple-choice answers to
// one quiz's questions.
func (s *AnswerService) StudentPgAnswers(studentID, quizID uint) ([]models.MultipleChoiceAnswer, error) {
	var answers []models.MultipleChoiceAnswer
	if err := s.db.
		Joins("JOIN multiple_choice_questions ON multiple_choice_questions.id = multiple_choice_answers.question_id").
		Where("multiple_choice_questions.quiz_id = ? AND multiple_choice_answers.student_id = ? AND multiple_choice_answers.status = ?",
			quizID, studentID, models.AnswerStatusActive).
		Find(&answers).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return answers, nil
}

func (s *AnswerService) StudentEssayAnswers(studentID, quizID uint) ([]models.EssayAnswer, error) {
	var answers []models.EssayAnswer
	if err := s.db.
		Joins("JOIN essay_questions ON essay_questions.id = essay_answers.question_id").
		Where("essay_questions.quiz_id = ? AND essay_answers.student_id = ? AND essay_answers.status = ?",
			quizID, studentID, models.AnswerStatusActive).
		Find(&answers).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return answers, nil
}

// ListEssayAnswers returns a quiz's active essay answers for the grading
// view, optionally narrowed to ungraded ones.
func (s *AnswerService) ListEssayAnswers(quizID uint, ungradedOnly bool) ([]models.EssayAnswer, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, apperr.NotFound("QUIZ_NOT_FOUND", "quiz not found")
	}

	q := s.db.
		Joins("JOIN essay_questions ON essay_questions.id = essay_answers.question_id").
		Where("essay_questions.quiz_id = ? AND essay_answers.status = ?", quizID, models.AnswerStatusActive).
		Preload("Student").
		Preload("Question").
		Order("essay_answers.created_at ASC")
	if ungradedOnly {
		q = q.Where("essay_answers.score IS NULL")
	}

	var answers []models.EssayAnswer
	if err := q.Find(&answers).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return answers, nil
}
