package services

import (
	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

func (s *QuizService) ListByMateri(materiID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := s.db.Where("materi_id = ?", materiID).
		Order("created_at ASC").
		Find(&quizzes).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return quizzes, nil
}

// Create fixes the quiz type at creation; it cannot change afterwards.
func (s *QuizService) Create(materiID uint, title, quizType string) (*models.Quiz, error) {
	if quizType != models.QuizTypePG && quizType != models.QuizTypeEssay {
		return nil, apperr.Validation("INVALID_QUIZ_TYPE", "unknown quiz type: %s", quizType)
	}

	var materi models.Materi
	if err := s.db.First(&materi, materiID).Error; err != nil {
		return nil, apperr.NotFound("MATERI_NOT_FOUND", "materi not found")
	}

	quiz := models.Quiz{
		MateriID: materiID,
		Title:    title,
		Type:     quizType,
		IsActive: true,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &quiz, nil
}

func (s *QuizService) Get(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, apperr.NotFound("QUIZ_NOT_FOUND", "quiz not found")
	}
	return &quiz, nil
}

func (s *QuizService) Update(quizID uint, title string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, apperr.NotFound("QUIZ_NOT_FOUND", "quiz not found")
	}

	quiz.Title = title
	if err := s.db.Save(&quiz).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &quiz, nil
}

func (s *QuizService) SetActive(quizID uint, active bool) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, apperr.NotFound("QUIZ_NOT_FOUND", "quiz not found")
	}

	quiz.IsActive = active
	if err := s.db.Save(&quiz).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &quiz, nil
}

type PgQuestionInput struct {
	Text               string
	Options            []string
	CorrectOptionIndex int
}

// CreatePgQuestion adds a multiple-choice question. Only allowed on
// MULTIPLE_CHOICE quizzes; a quiz never mixes question variants.
func (s *QuizService) CreatePgQuestion(quizID uint, input PgQuestionInput) (*models.MultipleChoiceQuestion, error) {
	quiz, err := s.Get(quizID)
	if err != nil {
		return nil, err
	}
	if quiz.Type != models.QuizTypePG {
		return nil, apperr.Validation("QUIZ_TYPE_MISMATCH", "quiz does not accept multiple choice questions")
	}
	if err := validatePgQuestion(input); err != nil {
		return nil, err
	}

	question := models.MultipleChoiceQuestion{
		QuizID:             quizID,
		Text:               input.Text,
		CorrectOptionIndex: input.CorrectOptionIndex,
		IsActive:           true,
	}

	tx := s.db.Begin()
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, apperr.Internal(err)
	}
	for i, text := range input.Options {
		opt := models.QuestionOption{QuestionID: question.ID, Text: text, OrderNum: i}
		if err := tx.Create(&opt).Error; err != nil {
			tx.Rollback()
			return nil, apperr.Internal(err)
		}
	}
	tx.Commit()

	s.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&question, question.ID)
	return &question, nil
}

// UpdatePgQuestion replaces a question's text, options and answer key.
// Options are rewritten wholesale; existing answers keep their recorded
// chosen index and derived correctness.
func (s *QuizService) UpdatePgQuestion(questionID uint, input PgQuestionInput) (*models.MultipleChoiceQuestion, error) {
	var question models.MultipleChoiceQuestion
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, apperr.NotFound("QUESTION_NOT_FOUND", "question not found")
	}
	if err := validatePgQuestion(input); err != nil {
		return nil, err
	}

	tx := s.db.Begin()

	question.Text = input.Text
	question.CorrectOptionIndex = input.CorrectOptionIndex
	if err := tx.Save(&question).Error; err != nil {
		tx.Rollback()
		return nil, apperr.Internal(err)
	}

	if err := tx.Where("question_id = ?", questionID).Delete(&models.QuestionOption{}).Error; err != nil {
		tx.Rollback()
		return nil, apperr.Internal(err)
	}
	for i, text := range input.Options {
		opt := models.QuestionOption{QuestionID: questionID, Text: text, OrderNum: i}
		if err := tx.Create(&opt).Error; err != nil {
			tx.Rollback()
			return nil, apperr.Internal(err)
		}
	}
	tx.Commit()

	s.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&question, questionID)
	return &question, nil
}

func (s *QuizService) CreateEssayQuestion(quizID uint, text string) (*models.EssayQuestion, error) {
	quiz, err := s.Get(quizID)
	if err != nil {
		return nil, err
	}
	if quiz.Type != models.QuizTypeEssay {
		return nil, apperr.Validation("QUIZ_TYPE_MISMATCH", "quiz does not accept essay questions")
	}

	question := models.EssayQuestion{QuizID: quizID, Text: text, IsActive: true}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &question, nil
}

func (s *QuizService) UpdateEssayQuestion(questionID uint, text string) (*models.EssayQuestion, error) {
	var question models.EssayQuestion
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, apperr.NotFound("QUESTION_NOT_FOUND", "question not found")
	}

	question.Text = text
	if err := s.db.Save(&question).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &question, nil
}

// SetPgQuestionActive archives a question rather than deleting it, so
// historical answers stay attached.
func (s *QuizService) SetPgQuestionActive(questionID uint, active bool) error {
	result := s.db.Model(&models.MultipleChoiceQuestion{}).
		Where("id = ?", questionID).Update("is_active", active)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("QUESTION_NOT_FOUND", "question not found")
	}
	return nil
}

func (s *QuizService) SetEssayQuestionActive(questionID uint, active bool) error {
	result := s.db.Model(&models.EssayQuestion{}).
		Where("id = ?", questionID).Update("is_active", active)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("QUESTION_NOT_FOUND", "question not found")
	}
	return nil
}

// PgQuestions returns a quiz's active multiple-choice questions with
// options ordered for display.
func (s *QuizService) PgQuestions(quizID uint) ([]models.MultipleChoiceQuestion, error) {
	var questions []models.MultipleChoiceQuestion
	if err := s.db.Where("quiz_id = ? AND is_active = ?", quizID, true).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return questions, nil
}

func (s *QuizService) EssayQuestions(quizID uint) ([]models.EssayQuestion, error) {
	var questions []models.EssayQuestion
	if err := s.db.Where("quiz_id = ? AND is_active = ?", quizID, true).
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return questions, nil
}

func validatePgQuestion(input PgQuestionInput) error {
	if len(input.Options) < 2 || len(input.Options) > 5 {
		return apperr.Validation("INVALID_OPTIONS", "multiple choice must have 2 to 5 options")
	}
	if input.CorrectOptionIndex < 0 || input.CorrectOptionIndex >= len(input.Options) {
		return apperr.Validation("INVALID_OPTIONS", "correct option index must point at one of the options")
	}
	return nil
}
