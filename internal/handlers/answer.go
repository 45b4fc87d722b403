package handlers

import (
	"net/http"

	"github.com/toniliu672/ira-server-sub000/internal/models"
	"github.com/toniliu672/ira-server-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService *services.AnswerService
	quizService   *services.QuizService
}

func NewAnswerHandler(answerService *services.AnswerService, quizService *services.QuizService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService, quizService: quizService}
}

type SubmitPgAnswerRequest struct {
	QuestionID  uint `json:"question_id" binding:"required" example:"1"`
	AnswerIndex *int `json:"answer_index" binding:"required" example:"2"`
}

type SubmitEssayAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required" example:"1"`
	Text       string `json:"text" binding:"required,min=10" example:"DNS menerjemahkan nama domain menjadi alamat IP."`
}

type GradeEssayRequest struct {
	Nilai    *float64 `json:"nilai" binding:"required" example:"85"`
	Feedback string   `json:"feedback" example:"Sudah baik, kurang contoh."`
}

type PgAnswerResult struct {
	ID        uint `json:"id"`
	IsCorrect bool `json:"isCorrect"`
	Nilai     int  `json:"nilai"`
}

type EssayAnswerResult struct {
	ID       uint     `json:"id"`
	Nilai    *float64 `json:"nilai"`
	Feedback *string  `json:"feedback"`
}

// SubmitPgAnswer godoc
// @Summary      Submit a multiple choice answer
// @Description  Record the student's answer; correctness is computed immediately
// @Tags         mobile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitPgAnswerRequest true "Answer data"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/mobile/answers/pg [post]
func (h *AnswerHandler) SubmitPgAnswer(c *gin.Context) {
	studentID := c.GetUint("user_id")

	var req SubmitPgAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	answer, err := h.answerService.SubmitMultipleChoice(studentID, req.QuestionID, *req.AnswerIndex)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, PgAnswerResult{
		ID:        answer.ID,
		IsCorrect: answer.IsCorrect,
		Nilai:     answer.Score,
	})
}

// SubmitEssayAnswer godoc
// @Summary      Submit an essay answer
// @Description  Record the student's essay response; it starts ungraded
// @Tags         mobile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitEssayAnswerRequest true "Answer data"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/mobile/answers/essay [post]
func (h *AnswerHandler) SubmitEssayAnswer(c *gin.Context) {
	studentID := c.GetUint("user_id")

	var req SubmitEssayAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	answer, err := h.answerService.SubmitEssay(studentID, req.QuestionID, req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, EssayAnswerResult{
		ID:       answer.ID,
		Nilai:    answer.Score,
		Feedback: answer.Feedback,
	})
}

// ListEssayAnswers godoc
// @Summary      List essay answers of a quiz for grading
// @Tags         grading
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        ungraded query bool false "Only ungraded answers"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/quizzes/{id}/essay-answers [get]
func (h *AnswerHandler) ListEssayAnswers(c *gin.Context) {
	quizID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	answers, err := h.answerService.ListEssayAnswers(quizID, c.Query("ungraded") == "true")
	if err != nil {
		respondErr(c, err)
		return
	}

	type gradingEntry struct {
		ID        uint     `json:"id"`
		StudentID uint     `json:"student_id"`
		Username  string   `json:"username"`
		Name      string   `json:"name"`
		Question  string   `json:"question"`
		Text      string   `json:"text"`
		Nilai     *float64 `json:"nilai"`
		Feedback  *string  `json:"feedback"`
	}
	entries := make([]gradingEntry, len(answers))
	for i, a := range answers {
		entries[i] = gradingEntry{
			ID:        a.ID,
			StudentID: a.StudentID,
			Username:  a.Student.Username,
			Name:      a.Student.Name,
			Question:  a.Question.Text,
			Text:      a.Text,
			Nilai:     a.Score,
			Feedback:  a.Feedback,
		}
	}
	respond(c, http.StatusOK, entries)
}

// GradeEssayAnswer godoc
// @Summary      Grade an essay answer
// @Description  Set score and feedback; re-grading overwrites
// @Tags         grading
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Answer ID"
// @Param        request body GradeEssayRequest true "Grade data"
// @Success      200 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/answers/essay/{id}/grade [put]
func (h *AnswerHandler) GradeEssayAnswer(c *gin.Context) {
	answerID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req GradeEssayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	answer, err := h.answerService.GradeEssay(answerID, *req.Nilai, req.Feedback)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, EssayAnswerResult{
		ID:       answer.ID,
		Nilai:    answer.Score,
		Feedback: answer.Feedback,
	})
}

// Question DTOs for quiz taking. The answer key never leaves the server;
// already-answered questions are marked so the app can lock them.
type PgQuestionView struct {
	ID       uint     `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Answered bool     `json:"answered"`
}

type EssayQuestionView struct {
	ID       uint     `json:"id"`
	Text     string   `json:"text"`
	Answered bool     `json:"answered"`
	Nilai    *float64 `json:"nilai"`
	Feedback *string  `json:"feedback"`
}

// GetQuizQuestions godoc
// @Summary      Get a quiz's questions for taking
// @Tags         mobile
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mobile/quizzes/{id}/questions [get]
func (h *AnswerHandler) GetQuizQuestions(c *gin.Context) {
	studentID := c.GetUint("user_id")
	quizID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	quiz, err := h.quizService.Get(quizID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !quiz.IsActive {
		respondErr(c, quizInactiveErr())
		return
	}

	switch quiz.Type {
	case models.QuizTypePG:
		questions, err := h.quizService.PgQuestions(quizID)
		if err != nil {
			respondErr(c, err)
			return
		}
		answered, err := h.answerService.StudentPgAnswers(studentID, quizID)
		if err != nil {
			respondErr(c, err)
			return
		}
		byQuestion := map[uint]bool{}
		for _, a := range answered {
			byQuestion[a.QuestionID] = true
		}

		views := make([]PgQuestionView, len(questions))
		for i, q := range questions {
			options := make([]string, len(q.Options))
			for j, o := range q.Options {
				options[j] = o.Text
			}
			views[i] = PgQuestionView{
				ID:       q.ID,
				Text:     q.Text,
				Options:  options,
				Answered: byQuestion[q.ID],
			}
		}
		respond(c, http.StatusOK, gin.H{"quiz": quiz, "questions": views})

	case models.QuizTypeEssay:
		questions, err := h.quizService.EssayQuestions(quizID)
		if err != nil {
			respondErr(c, err)
			return
		}
		answered, err := h.answerService.StudentEssayAnswers(studentID, quizID)
		if err != nil {
			respondErr(c, err)
			return
		}
		byQuestion := map[uint]models.EssayAnswer{}
		for _, a := range answered {
			byQuestion[a.QuestionID] = a
		}

		views := make([]EssayQuestionView, len(questions))
		for i, q := range questions {
			view := EssayQuestionView{ID: q.ID, Text: q.Text}
			if a, ok := byQuestion[q.ID]; ok {
				view.Answered = true
				view.Nilai = a.Score
				view.Feedback = a.Feedback
			}
			views[i] = view
		}
		respond(c, http.StatusOK, gin.H{"quiz": quiz, "questions": views})
	}
}
