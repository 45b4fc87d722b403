package handlers

import (
	"net/http"

	"github.com/toniliu672/ira-server-sub000/internal/models"
	"github.com/toniliu672/ira-server-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type CreateQuizRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"Kuis Bab 1"`
	Type  string `json:"type" binding:"required,quiztype" example:"MULTIPLE_CHOICE"`
}

type UpdateQuizRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"Kuis Bab 1 (revisi)"`
}

type PgQuestionRequest struct {
	Text               string   `json:"text" binding:"required" example:"Apa itu LAN?"`
	Options            []string `json:"options" binding:"required,min=2,max=5,dive,required" example:"Local Area Network"`
	CorrectOptionIndex *int     `json:"correct_option_index" binding:"required" example:"0"`
}

type EssayQuestionRequest struct {
	Text string `json:"text" binding:"required" example:"Jelaskan cara kerja DNS."`
}

// ListQuizzes godoc
// @Summary      List quizzes under a materi
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Materi ID"
// @Success      200 {object} Response
// @Router       /api/v1/admin/materi/{id}/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	materiID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	quizzes, err := h.quizService.ListByMateri(materiID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, quizzes)
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz under a materi; type is fixed at creation
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Materi ID"
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/materi/{id}/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	materiID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	quiz, err := h.quizService.Create(materiID, req.Title, req.Type)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, quiz)
}

// GetQuiz godoc
// @Summary      Get a quiz with its questions
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
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

	data := gin.H{"quiz": quiz}
	switch quiz.Type {
	case models.QuizTypePG:
		questions, err := h.quizService.PgQuestions(quizID)
		if err != nil {
			respondErr(c, err)
			return
		}
		data["questions"] = questions
	case models.QuizTypeEssay:
		questions, err := h.quizService.EssayQuestions(quizID)
		if err != nil {
			respondErr(c, err)
			return
		}
		data["questions"] = questions
	}

	respond(c, http.StatusOK, data)
}

// UpdateQuiz godoc
// @Summary      Update a quiz title
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body UpdateQuizRequest true "Quiz data"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	quizID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	quiz, err := h.quizService.Update(quizID, req.Title)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, quiz)
}

// SetQuizActive godoc
// @Summary      Archive or restore a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body SetActiveRequest true "Active flag"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/quizzes/{id}/active [put]
func (h *QuizHandler) SetQuizActive(c *gin.Context) {
	quizID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	quiz, err := h.quizService.SetActive(quizID, *req.IsActive)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, quiz)
}

// CreatePgQuestion godoc
// @Summary      Add a multiple choice question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body PgQuestionRequest true "Question data"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/quizzes/{id}/questions/pg [post]
func (h *QuizHandler) CreatePgQuestion(c *gin.Context) {
	quizID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req PgQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	question, err := h.quizService.CreatePgQuestion(quizID, services.PgQuestionInput{
		Text:               req.Text,
		Options:            req.Options,
		CorrectOptionIndex: *req.CorrectOptionIndex,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, question)
}

// UpdatePgQuestion godoc
// @Summary      Update a multiple choice question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body PgQuestionRequest true "Question data"
// @Success      200 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/questions/pg/{id} [put]
func (h *QuizHandler) UpdatePgQuestion(c *gin.Context) {
	questionID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req PgQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	question, err := h.quizService.UpdatePgQuestion(questionID, services.PgQuestionInput{
		Text:               req.Text,
		Options:            req.Options,
		CorrectOptionIndex: *req.CorrectOptionIndex,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, question)
}

// CreateEssayQuestion godoc
// @Summary      Add an essay question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body EssayQuestionRequest true "Question data"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/quizzes/{id}/questions/essay [post]
func (h *QuizHandler) CreateEssayQuestion(c *gin.Context) {
	quizID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req EssayQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	question, err := h.quizService.CreateEssayQuestion(quizID, req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, question)
}

// UpdateEssayQuestion godoc
// @Summary      Update an essay question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body EssayQuestionRequest true "Question data"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/questions/essay/{id} [put]
func (h *QuizHandler) UpdateEssayQuestion(c *gin.Context) {
	questionID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req EssayQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	question, err := h.quizService.UpdateEssayQuestion(questionID, req.Text)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, question)
}

// SetPgQuestionActive godoc
// @Summary      Archive or restore a multiple choice question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body SetActiveRequest true "Active flag"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/questions/pg/{id}/active [put]
func (h *QuizHandler) SetPgQuestionActive(c *gin.Context) {
	questionID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	if err := h.quizService.SetPgQuestionActive(questionID, *req.IsActive); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": questionID, "is_active": *req.IsActive})
}

// SetEssayQuestionActive godoc
// @Summary      Archive or restore an essay question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body SetActiveRequest true "Active flag"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/questions/essay/{id}/active [put]
func (h *QuizHandler) SetEssayQuestionActive(c *gin.Context) {
	questionID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	if err := h.quizService.SetEssayQuestionActive(questionID, *req.IsActive); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": questionID, "is_active": *req.IsActive})
}
