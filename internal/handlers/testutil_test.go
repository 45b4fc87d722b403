package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/toniliu672/ira-server-sub000/internal/database"
	"github.com/toniliu672/ira-server-sub000/internal/middleware"
	"github.com/toniliu672/ira-server-sub000/internal/models"
	"github.com/toniliu672/ira-server-sub000/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	auth   *services.AuthService
}

// newTestEnv assembles the API subset these tests exercise, wired the same
// way the server binary wires it.
func newTestEnv(t *testing.T) *testEnv {
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

	authService := services.NewAuthService(db, "test-secret")
	scoreService := services.NewScoreService(db)
	answerService := services.NewAnswerService(db, scoreService)
	quizService := services.NewQuizService(db)
	leaderboardService := services.NewLeaderboardService(db)

	answerHandler := NewAnswerHandler(answerService, quizService)
	leaderboardHandler := NewLeaderboardHandler(leaderboardService)

	router := gin.New()
	api := router.Group("/api/v1")

	admin := api.Group("/admin", middleware.AdminAuth(authService))
	admin.GET("/quizzes/:id/essay-answers", answerHandler.ListEssayAnswers)
	admin.GET("/quizzes/:id/results", leaderboardHandler.GetQuizResults)
	admin.PUT("/answers/essay/:id/grade", answerHandler.GradeEssayAnswer)

	mobile := api.Group("/mobile", middleware.StudentAuth(authService))
	mobile.GET("/quizzes/:id/questions", answerHandler.GetQuizQuestions)
	mobile.GET("/quizzes/:id/leaderboard", leaderboardHandler.GetLeaderboard)
	mobile.POST("/answers/pg", answerHandler.SubmitPgAnswer)
	mobile.POST("/answers/essay", answerHandler.SubmitEssayAnswer)

	return &testEnv{db: db, router: router, auth: authService}
}

func (e *testEnv) createStudent(t *testing.T, username, name string) models.Student {
	t.Helper()
	student := models.Student{Username: username, Name: name, PasswordHash: "x"}
	require.NoError(t, e.db.Create(&student).Error)
	return student
}

func (e *testEnv) studentToken(t *testing.T, studentID uint) string {
	t.Helper()
	token, err := e.auth.GenerateToken(studentID, services.RoleStudent)
	require.NoError(t, err)
	return token
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, err := e.auth.GenerateToken(1, services.RoleAdmin)
	require.NoError(t, err)
	return token
}

func (e *testEnv) createPgQuiz(t *testing.T, correctIndexes []int) (models.Quiz, []models.MultipleChoiceQuestion) {
	t.Helper()

	materi := models.Materi{Title: "Materi", IsActive: true}
	require.NoError(t, e.db.Create(&materi).Error)
	quiz := models.Quiz{MateriID: materi.ID, Title: "Kuis PG", Type: models.QuizTypePG, IsActive: true}
	require.NoError(t, e.db.Create(&quiz).Error)

	questions := make([]models.MultipleChoiceQuestion, len(correctIndexes))
	for i, correct := range correctIndexes {
		q := models.MultipleChoiceQuestion{
			QuizID: quiz.ID, Text: fmt.Sprintf("Soal %d", i+1),
			CorrectOptionIndex: correct, IsActive: true,
		}
		require.NoError(t, e.db.Create(&q).Error)
		for j := 0; j < 3; j++ {
			opt := models.QuestionOption{QuestionID: q.ID, Text: fmt.Sprintf("Opsi %d", j), OrderNum: j}
			require.NoError(t, e.db.Create(&opt).Error)
		}
		questions[i] = q
	}
	return quiz, questions
}

func (e *testEnv) createEssayQuiz(t *testing.T, questionCount int) (models.Quiz, []models.EssayQuestion) {
	t.Helper()

	materi := models.Materi{Title: "Materi", IsActive: true}
	require.NoError(t, e.db.Create(&materi).Error)
	quiz := models.Quiz{MateriID: materi.ID, Title: "Kuis Essay", Type: models.QuizTypeEssay, IsActive: true}
	require.NoError(t, e.db.Create(&quiz).Error)

	questions := make([]models.EssayQuestion, questionCount)
	for i := 0; i < questionCount; i++ {
		q := models.EssayQuestion{QuizID: quiz.ID, Text: fmt.Sprintf("Soal essay %d", i+1), IsActive: true}
		require.NoError(t, e.db.Create(&q).Error)
		questions[i] = q
	}
	return quiz, questions
}

// doJSON issues a request against the test router and returns the recorded
// response.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded response into a generic map for
// asserting on the exact wire shape.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
