package main

import (
	"log"

	"github.com/toniliu672/ira-server-sub000/internal/config"
	"github.com/toniliu672/ira-server-sub000/internal/database"
	"github.com/toniliu672/ira-server-sub000/internal/handlers"
	"github.com/toniliu672/ira-server-sub000/internal/middleware"
	"github.com/toniliu672/ira-server-sub000/internal/models"
	"github.com/toniliu672/ira-server-sub000/internal/services"
	"github.com/toniliu672/ira-server-sub000/internal/storage"

	_ "github.com/toniliu672/ira-server-sub000/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           IRA LMS API
// @version         1.0
// @description     Admin dashboard and mobile API for materials, quizzes, scoring and leaderboards
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	files, err := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("failed to init upload storage: %v", err)
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	materiService := services.NewMateriService(db)
	quizService := services.NewQuizService(db)
	scoreService := services.NewScoreService(db)
	answerService := services.NewAnswerService(db, scoreService)
	leaderboardService := services.NewLeaderboardService(db)
	studentService := services.NewStudentService(db)
	adminService := services.NewAdminService(db)

	authHandler := handlers.NewAuthHandler(authService)
	materiHandler := handlers.NewMateriHandler(materiService)
	quizHandler := handlers.NewQuizHandler(quizService)
	answerHandler := handlers.NewAnswerHandler(answerService, quizService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	studentHandler := handlers.NewStudentHandler(studentService, adminService)
	uploadHandler := handlers.NewUploadHandler(files)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("quiztype", func(fl validator.FieldLevel) bool {
			t := fl.Field().String()
			return t == models.QuizTypePG || t == models.QuizTypeEssay
		})
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/admin/login", authHandler.LoginAdmin)
			auth.POST("/student/login", authHandler.LoginStudent)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(authService))
		{
			admin.GET("/materi", materiHandler.ListMateri)
			admin.POST("/materi", materiHandler.CreateMateri)
			admin.GET("/materi/:id", materiHandler.GetMateri)
			admin.PUT("/materi/:id", materiHandler.UpdateMateri)
			admin.PUT("/materi/:id/active", materiHandler.SetMateriActive)
			admin.GET("/materi/:id/quizzes", quizHandler.ListQuizzes)
			admin.POST("/materi/:id/quizzes", quizHandler.CreateQuiz)

			admin.GET("/quizzes/:id", quizHandler.GetQuiz)
			admin.PUT("/quizzes/:id", quizHandler.UpdateQuiz)
			admin.PUT("/quizzes/:id/active", quizHandler.SetQuizActive)
			admin.POST("/quizzes/:id/questions/pg", quizHandler.CreatePgQuestion)
			admin.POST("/quizzes/:id/questions/essay", quizHandler.CreateEssayQuestion)
			admin.GET("/quizzes/:id/essay-answers", answerHandler.ListEssayAnswers)
			admin.GET("/quizzes/:id/results", leaderboardHandler.GetQuizResults)

			admin.PUT("/questions/pg/:id", quizHandler.UpdatePgQuestion)
			admin.PUT("/questions/pg/:id/active", quizHandler.SetPgQuestionActive)
			admin.PUT("/questions/essay/:id", quizHandler.UpdateEssayQuestion)
			admin.PUT("/questions/essay/:id/active", quizHandler.SetEssayQuestionActive)

			admin.PUT("/answers/essay/:id/grade", answerHandler.GradeEssayAnswer)

			admin.GET("/students", studentHandler.ListStudents)
			admin.POST("/students", studentHandler.CreateStudent)
			admin.PUT("/students/:id", studentHandler.UpdateStudent)
			admin.DELETE("/students/:id", studentHandler.DeleteStudent)

			admin.GET("/admins", studentHandler.ListAdmins)
			admin.POST("/admins", studentHandler.CreateAdmin)
			admin.PUT("/admins/:id", studentHandler.UpdateAdmin)
			admin.DELETE("/admins/:id", studentHandler.DeleteAdmin)

			admin.POST("/upload", uploadHandler.Upload)
		}

		mobile := api.Group("/mobile")
		mobile.Use(middleware.StudentAuth(authService))
		{
			mobile.GET("/materi", materiHandler.ListMateriMobile)
			mobile.GET("/materi/:id", materiHandler.GetMateriMobile)
			mobile.GET("/quizzes/:id/questions", answerHandler.GetQuizQuestions)
			mobile.GET("/quizzes/:id/leaderboard", leaderboardHandler.GetLeaderboard)
			mobile.POST("/answers/pg", answerHandler.SubmitPgAnswer)
			mobile.POST("/answers/essay", answerHandler.SubmitEssayAnswer)
			mobile.GET("/profile", studentHandler.GetProfile)
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
