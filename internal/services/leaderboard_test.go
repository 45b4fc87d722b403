package services

import (
	"fmt"
	"testing"

	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func answerPg(t *testing.T, db *gorm.DB, studentID uint, question models.MultipleChoiceQuestion, chosen int) {
	t.Helper()
	ans := models.MultipleChoiceAnswer{
		StudentID:         studentID,
		QuestionID:        question.ID,
		ChosenOptionIndex: chosen,
		IsCorrect:         chosen == question.CorrectOptionIndex,
		Status:            models.AnswerStatusActive,
	}
	if ans.IsCorrect {
		ans.Score = 1
	}
	require.NoError(t, db.Create(&ans).Error)
}

func TestBuild_RanksAndMarksRequester(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)
	quiz, questions := createPgQuiz(t, db, []int{1, 2}, 3)

	a := createStudent(t, db, "siswa_a", "Ani")
	b := createStudent(t, db, "siswa_b", "Budi")
	c := createStudent(t, db, "siswa_c", "Citra")

	// A answers both correctly, B gets one of two.
	answerPg(t, db, a.ID, questions[0], 1)
	answerPg(t, db, a.ID, questions[1], 2)
	answerPg(t, db, b.ID, questions[0], 0)
	answerPg(t, db, b.ID, questions[1], 2)

	// C has no answers but still appears, unioned in as the requester.
	lb, err := svc.Build(quiz.ID, c.ID)
	require.NoError(t, err)
	require.Len(t, lb.Rankings, 3)

	assert.Equal(t, 1, lb.Rankings[0].Rank)
	assert.Equal(t, "siswa_a", lb.Rankings[0].Username)
	assert.Equal(t, 1.0, lb.Rankings[0].Score)
	assert.False(t, lb.Rankings[0].IsYou)

	assert.Equal(t, 2, lb.Rankings[1].Rank)
	assert.Equal(t, "siswa_b", lb.Rankings[1].Username)
	assert.Equal(t, 0.5, lb.Rankings[1].Score)

	assert.Equal(t, 3, lb.Rankings[2].Rank)
	assert.Equal(t, "siswa_c", lb.Rankings[2].Username)
	assert.Zero(t, lb.Rankings[2].Score)
	assert.True(t, lb.Rankings[2].IsYou)

	assert.Equal(t, RequesterStanding{Rank: 3, Score: 0}, lb.User)

	// Same answer set, same output.
	again, err := svc.Build(quiz.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, lb, again)
}

func TestBuild_TieBreaksByUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)
	quiz, questions := createPgQuiz(t, db, []int{0}, 3)

	b := createStudent(t, db, "siswa_b", "Budi")
	a := createStudent(t, db, "siswa_a", "Ani")
	answerPg(t, db, b.ID, questions[0], 0)
	answerPg(t, db, a.ID, questions[0], 0)

	lb, err := svc.Build(quiz.ID, a.ID)
	require.NoError(t, err)
	require.Len(t, lb.Rankings, 2)
	assert.Equal(t, "siswa_a", lb.Rankings[0].Username)
	assert.Equal(t, "siswa_b", lb.Rankings[1].Username)
}

func TestBuild_RoundsScoresToTwoDecimals(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)
	quiz, questions := createPgQuiz(t, db, []int{0, 0, 0}, 3)

	a := createStudent(t, db, "siswa_a", "Ani")
	answerPg(t, db, a.ID, questions[0], 0)
	answerPg(t, db, a.ID, questions[1], 0)
	answerPg(t, db, a.ID, questions[2], 1)

	lb, err := svc.Build(quiz.ID, a.ID)
	require.NoError(t, err)
	require.Len(t, lb.Rankings, 1)
	assert.Equal(t, 0.67, lb.Rankings[0].Score)
	assert.Equal(t, 0.67, lb.User.Score)
}

func TestBuild_CapsAtHundredButKeepsRequesterStanding(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)
	quiz, questions := createPgQuiz(t, db, []int{0}, 3)

	for i := 0; i < 105; i++ {
		st := createStudent(t, db, fmt.Sprintf("siswa_%03d", i), fmt.Sprintf("Siswa %d", i))
		answerPg(t, db, st.ID, questions[0], 0)
	}
	requester := createStudent(t, db, "zz_requester", "Zaki")

	lb, err := svc.Build(quiz.ID, requester.ID)
	require.NoError(t, err)
	assert.Len(t, lb.Rankings, 100)
	for i, entry := range lb.Rankings {
		assert.Equal(t, i+1, entry.Rank)
		assert.False(t, entry.IsYou)
	}

	// The requester sorts last (score 0, highest username) and is outside
	// the window, but the standing still reports the true rank.
	assert.Equal(t, RequesterStanding{Rank: 106, Score: 0}, lb.User)
}

func TestBuild_EssayUngradedExcluded(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)
	quiz, questions := createEssayQuiz(t, db, 2)

	a := createStudent(t, db, "siswa_a", "Ani")
	b := createStudent(t, db, "siswa_b", "Budi")

	eighty := 80.0
	require.NoError(t, db.Create(&models.EssayAnswer{
		StudentID: a.ID, QuestionID: questions[0].ID, Text: "Jawaban",
		Score: &eighty, Status: models.AnswerStatusActive,
	}).Error)
	require.NoError(t, db.Create(&models.EssayAnswer{
		StudentID: a.ID, QuestionID: questions[1].ID, Text: "Jawaban",
		Status: models.AnswerStatusActive,
	}).Error)
	require.NoError(t, db.Create(&models.EssayAnswer{
		StudentID: b.ID, QuestionID: questions[0].ID, Text: "Jawaban",
		Status: models.AnswerStatusActive,
	}).Error)

	lb, err := svc.Build(quiz.ID, a.ID)
	require.NoError(t, err)
	require.Len(t, lb.Rankings, 2)

	// A's ungraded second answer is skipped, not averaged in as zero.
	assert.Equal(t, "siswa_a", lb.Rankings[0].Username)
	assert.Equal(t, 80.0, lb.Rankings[0].Score)
	// B is fully ungraded: present with score 0.
	assert.Equal(t, "siswa_b", lb.Rankings[1].Username)
	assert.Zero(t, lb.Rankings[1].Score)
}

func TestBuild_InactiveQuizNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)
	quiz, _ := createPgQuiz(t, db, []int{0}, 3)
	student := createStudent(t, db, "siswa_a", "Ani")

	require.NoError(t, db.Model(&models.Quiz{}).
		Where("id = ?", quiz.ID).Update("is_active", false).Error)

	_, err := svc.Build(quiz.ID, student.ID)
	requireKind(t, err, apperr.KindNotFound)

	_, err = svc.Build(9999, student.ID)
	requireKind(t, err, apperr.KindNotFound)
}

func TestAdminResults_GradingState(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)
	quiz, questions := createEssayQuiz(t, db, 2)

	a := createStudent(t, db, "siswa_a", "Ani")
	b := createStudent(t, db, "siswa_b", "Budi")

	ninety, seventy := 90.0, 70.0
	require.NoError(t, db.Create(&models.EssayAnswer{
		StudentID: a.ID, QuestionID: questions[0].ID, Text: "Jawaban",
		Score: &ninety, Status: models.AnswerStatusActive,
	}).Error)
	require.NoError(t, db.Create(&models.EssayAnswer{
		StudentID: a.ID, QuestionID: questions[1].ID, Text: "Jawaban",
		Score: &seventy, Status: models.AnswerStatusActive,
	}).Error)
	require.NoError(t, db.Create(&models.EssayAnswer{
		StudentID: b.ID, QuestionID: questions[0].ID, Text: "Jawaban",
		Status: models.AnswerStatusActive,
	}).Error)

	entries, err := svc.AdminResults(quiz.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "siswa_a", entries[0].Username)
	assert.Equal(t, 80.0, entries[0].Score)
	assert.Equal(t, 2, entries[0].Answered)
	assert.Equal(t, 2, entries[0].Graded)
	assert.True(t, entries[0].IsComplete)

	assert.Equal(t, "siswa_b", entries[1].Username)
	assert.Equal(t, 1, entries[1].Answered)
	assert.Equal(t, 0, entries[1].Graded)
	assert.False(t, entries[1].IsComplete)
}

func TestBuild_ExcludesArchivedQuestionAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeaderboardService(db)
	quiz, questions := createPgQuiz(t, db, []int{0, 0}, 3)

	a := createStudent(t, db, "siswa_a", "Ani")
	answerPg(t, db, a.ID, questions[0], 0)
	answerPg(t, db, a.ID, questions[1], 1)

	// Archiving the missed question drops its answer from the ranking,
	// lifting A back to a perfect score.
	require.NoError(t, db.Model(&models.MultipleChoiceQuestion{}).
		Where("id = ?", questions[1].ID).Update("is_active", false).Error)

	lb, err := svc.Build(quiz.ID, a.ID)
	require.NoError(t, err)
	require.Len(t, lb.Rankings, 1)
	assert.Equal(t, 1.0, lb.Rankings[0].Score)
}
