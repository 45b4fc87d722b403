package services

import (
	"fmt"
	"testing"

	"github.com/toniliu672/ira-server-sub000/internal/database"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A :memory: database exists per connection; pin the pool to one so
	// every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createStudent(t *testing.T, db *gorm.DB, username, name string) models.Student {
	t.Helper()
	student := models.Student{
		Username:     username,
		Name:         name,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

// createPgQuiz builds an active multiple-choice quiz with one question per
// entry in correctIndexes, each question carrying optionCount options.
func createPgQuiz(t *testing.T, db *gorm.DB, correctIndexes []int, optionCount int) (models.Quiz, []models.MultipleChoiceQuestion) {
	t.Helper()

	materi := models.Materi{Title: "Materi", IsActive: true}
	require.NoError(t, db.Create(&materi).Error)

	quiz := models.Quiz{MateriID: materi.ID, Title: "Kuis PG", Type: models.QuizTypePG, IsActive: true}
	require.NoError(t, db.Create(&quiz).Error)

	questions := make([]models.MultipleChoiceQuestion, len(correctIndexes))
	for i, correct := range correctIndexes {
		q := models.MultipleChoiceQuestion{
			QuizID:             quiz.ID,
			Text:               fmt.Sprintf("Soal %d", i+1),
			CorrectOptionIndex: correct,
			IsActive:           true,
		}
		require.NoError(t, db.Create(&q).Error)
		for j := 0; j < optionCount; j++ {
			opt := models.QuestionOption{QuestionID: q.ID, Text: fmt.Sprintf("Opsi %d", j), OrderNum: j}
			require.NoError(t, db.Create(&opt).Error)
		}
		questions[i] = q
	}
	return quiz, questions
}

func createEssayQuiz(t *testing.T, db *gorm.DB, questionCount int) (models.Quiz, []models.EssayQuestion) {
	t.Helper()

	materi := models.Materi{Title: "Materi", IsActive: true}
	require.NoError(t, db.Create(&materi).Error)

	quiz := models.Quiz{MateriID: materi.ID, Title: "Kuis Essay", Type: models.QuizTypeEssay, IsActive: true}
	require.NoError(t, db.Create(&quiz).Error)

	questions := make([]models.EssayQuestion, questionCount)
	for i := 0; i < questionCount; i++ {
		q := models.EssayQuestion{
			QuizID:   quiz.ID,
			Text:     fmt.Sprintf("Soal essay %d", i+1),
			IsActive: true,
		}
		require.NoError(t, db.Create(&q).Error)
		questions[i] = q
	}
	return quiz, questions
}

func newAnswerService(db *gorm.DB) *AnswerService {
	return NewAnswerService(db, NewScoreService(db))
}
