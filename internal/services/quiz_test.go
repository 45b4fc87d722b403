package services

import (
	"testing"

	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizCreate_TypeFixedAtCreation(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)

	materi := models.Materi{Title: "Materi", IsActive: true}
	require.NoError(t, db.Create(&materi).Error)

	quiz, err := svc.Create(materi.ID, "Kuis 1", models.QuizTypePG)
	require.NoError(t, err)
	assert.Equal(t, models.QuizTypePG, quiz.Type)
	assert.True(t, quiz.IsActive)

	_, err = svc.Create(materi.ID, "Kuis 2", "TRUE_FALSE")
	requireKind(t, err, apperr.KindValidation)

	_, err = svc.Create(9999, "Kuis 3", models.QuizTypePG)
	requireKind(t, err, apperr.KindNotFound)
}

func TestCreatePgQuestion_OptionValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	quiz, _ := createPgQuiz(t, db, nil, 0)

	_, err := svc.CreatePgQuestion(quiz.ID, PgQuestionInput{
		Text: "Soal", Options: []string{"A"}, CorrectOptionIndex: 0,
	})
	requireKind(t, err, apperr.KindValidation)

	_, err = svc.CreatePgQuestion(quiz.ID, PgQuestionInput{
		Text: "Soal", Options: []string{"A", "B", "C", "D", "E", "F"}, CorrectOptionIndex: 0,
	})
	requireKind(t, err, apperr.KindValidation)

	_, err = svc.CreatePgQuestion(quiz.ID, PgQuestionInput{
		Text: "Soal", Options: []string{"A", "B"}, CorrectOptionIndex: 2,
	})
	requireKind(t, err, apperr.KindValidation)

	q, err := svc.CreatePgQuestion(quiz.ID, PgQuestionInput{
		Text: "Soal", Options: []string{"A", "B", "C"}, CorrectOptionIndex: 1,
	})
	require.NoError(t, err)
	require.Len(t, q.Options, 3)
	assert.Equal(t, 1, q.CorrectOptionIndex)
	for i, opt := range q.Options {
		assert.Equal(t, i, opt.OrderNum)
	}
}

func TestCreateQuestion_TypeMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	pgQuiz, _ := createPgQuiz(t, db, nil, 0)
	essayQuiz, _ := createEssayQuiz(t, db, 0)

	_, err := svc.CreateEssayQuestion(pgQuiz.ID, "Jelaskan DNS.")
	requireKind(t, err, apperr.KindValidation)

	_, err = svc.CreatePgQuestion(essayQuiz.ID, PgQuestionInput{
		Text: "Soal", Options: []string{"A", "B"}, CorrectOptionIndex: 0,
	})
	requireKind(t, err, apperr.KindValidation)
}

func TestUpdatePgQuestion_RewritesOptions(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	_, questions := createPgQuiz(t, db, []int{0}, 3)

	updated, err := svc.UpdatePgQuestion(questions[0].ID, PgQuestionInput{
		Text: "Soal revisi", Options: []string{"X", "Y"}, CorrectOptionIndex: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Soal revisi", updated.Text)
	assert.Equal(t, 1, updated.CorrectOptionIndex)
	require.Len(t, updated.Options, 2)
	assert.Equal(t, "X", updated.Options[0].Text)

	var count int64
	db.Model(&models.QuestionOption{}).Where("question_id = ?", questions[0].ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestSetPgQuestionActive_ArchivesNotDeletes(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(db)
	quiz, questions := createPgQuiz(t, db, []int{0, 0}, 3)

	require.NoError(t, svc.SetPgQuestionActive(questions[0].ID, false))

	active, err := svc.PgQuestions(quiz.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	// The archived row is still there.
	var archived models.MultipleChoiceQuestion
	require.NoError(t, db.First(&archived, questions[0].ID).Error)
	assert.False(t, archived.IsActive)

	require.NoError(t, svc.SetPgQuestionActive(questions[0].ID, true))
	active, err = svc.PgQuestions(quiz.ID)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	err = svc.SetPgQuestionActive(9999, false)
	requireKind(t, err, apperr.KindNotFound)
}
