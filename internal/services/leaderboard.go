package services

import (
	"math"
	"sort"

	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"gorm.io/gorm"
)

// Display cap for leaderboard reads. The requester's own standing is always
// computed from the full sorted set, even when it falls outside this window.
const leaderboardLimit = 100

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	IsYou    bool    `json:"isYou"`
}

type RequesterStanding struct {
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
}

type Leaderboard struct {
	Rankings []LeaderboardEntry `json:"rankings"`
	User     RequesterStanding  `json:"user"`
}

type AdminResultEntry struct {
	Rank       int     `json:"rank"`
	StudentID  uint    `json:"student_id"`
	Username   string  `json:"username"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Answered   int     `json:"answered"`
	Graded     int     `json:"graded"`
	IsComplete bool    `json:"is_complete"`
}

// candidate is one student's quiz-scoped aggregate. The score here is the
// mean over this quiz's questions only, never the student's global rollup.
type candidate struct {
	studentID uint
	username  string
	name      string
	score     float64
	answered  int
	graded    int
}

// Build ranks every student with at least one active answer to the quiz,
// plus the requester, by quiz-scoped average score. Ordering is score
// descending with ascending username as the tie-break, so repeated calls on
// the same answer set produce identical output.
func (s *LeaderboardService) Build(quizID, requestingStudentID uint) (*Leaderboard, error) {
	candidates, err := s.rankedCandidates(quizID, &requestingStudentID)
	if err != nil {
		return nil, err
	}

	lb := &Leaderboard{Rankings: []LeaderboardEntry{}}
	for i, c := range candidates {
		rank := i + 1
		if c.studentID == requestingStudentID {
			lb.User = RequesterStanding{Rank: rank, Score: round2(c.score)}
		}
		if rank <= leaderboardLimit {
			lb.Rankings = append(lb.Rankings, LeaderboardEntry{
				Rank:     rank,
				Username: c.username,
				Name:     c.name,
				Score:    round2(c.score),
				IsYou:    c.studentID == requestingStudentID,
			})
		}
	}
	return lb, nil
}

// AdminResults returns the full ranking with grading state. isComplete is
// informational only: ungraded essay answers are excluded from averages,
// never counted as zero.
func (s *LeaderboardService) AdminResults(quizID uint) ([]AdminResultEntry, error) {
	candidates, err := s.rankedCandidates(quizID, nil)
	if err != nil {
		return nil, err
	}

	questionCount, err := s.activeQuestionCount(quizID)
	if err != nil {
		return nil, err
	}

	entries := make([]AdminResultEntry, len(candidates))
	for i, c := range candidates {
		entries[i] = AdminResultEntry{
			Rank:       i + 1,
			StudentID:  c.studentID,
			Username:   c.username,
			Name:       c.name,
			Score:      round2(c.score),
			Answered:   c.answered,
			Graded:     c.graded,
			IsComplete: c.answered == questionCount && c.graded == c.answered && questionCount > 0,
		}
	}
	return entries, nil
}

// rankedCandidates produces the sorted candidate set for a quiz. When
// requester is non-nil it is unioned in, with score 0 if it has no answers.
func (s *LeaderboardService) rankedCandidates(quizID uint, requester *uint) ([]candidate, error) {
	var quiz models.Quiz
	if err := s.db.Where("id = ? AND is_active = ?", quizID, true).First(&quiz).Error; err != nil {
		return nil, apperr.NotFound("QUIZ_NOT_FOUND", "quiz not found")
	}

	byStudent := map[uint][]models.Scorable{}

	switch quiz.Type {
	case models.QuizTypePG:
		var answers []models.MultipleChoiceAnswer
		if err := s.db.
			Joins("JOIN multiple_choice_questions ON multiple_choice_questions.id = multiple_choice_answers.question_id").
			Where("multiple_choice_questions.quiz_id = ? AND multiple_choice_questions.is_active = ? AND multiple_choice_answers.status = ?",
				quizID, true, models.AnswerStatusActive).
			Find(&answers).Error; err != nil {
			return nil, apperr.Internal(err)
		}
		for _, a := range answers {
			byStudent[a.StudentID] = append(byStudent[a.StudentID], a)
		}

	case models.QuizTypeEssay:
		var answers []models.EssayAnswer
		if err := s.db.
			Joins("JOIN essay_questions ON essay_questions.id = essay_answers.question_id").
			Where("essay_questions.quiz_id = ? AND essay_questions.is_active = ? AND essay_answers.status = ?",
				quizID, true, models.AnswerStatusActive).
			Find(&answers).Error; err != nil {
			return nil, apperr.Internal(err)
		}
		for _, a := range answers {
			byStudent[a.StudentID] = append(byStudent[a.StudentID], a)
		}
	}

	if requester != nil {
		if _, ok := byStudent[*requester]; !ok {
			byStudent[*requester] = nil
		}
	}

	ids := make([]uint, 0, len(byStudent))
	for id := range byStudent {
		ids = append(ids, id)
	}

	var students []models.Student
	if err := s.db.Where("id IN ?", ids).Find(&students).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	candidates := make([]candidate, 0, len(students))
	for _, st := range students {
		answers := byStudent[st.ID]
		graded := 0
		for _, a := range answers {
			if _, ok := a.Contribution(); ok {
				graded++
			}
		}
		candidates = append(candidates, candidate{
			studentID: st.ID,
			username:  st.Username,
			name:      st.Name,
			score:     models.AverageContribution(answers),
			answered:  len(answers),
			graded:    graded,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].username < candidates[j].username
	})

	return candidates, nil
}

func (s *LeaderboardService) activeQuestionCount(quizID uint) (int, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return 0, apperr.NotFound("QUIZ_NOT_FOUND", "quiz not found")
	}

	var count int64
	var err error
	switch quiz.Type {
	case models.QuizTypePG:
		err = s.db.Model(&models.MultipleChoiceQuestion{}).
			Where("quiz_id = ? AND is_active = ?", quizID, true).Count(&count).Error
	case models.QuizTypeEssay:
		err = s.db.Model(&models.EssayQuestion{}).
			Where("quiz_id = ? AND is_active = ?", quizID, true).Count(&count).Error
	}
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return int(count), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
