package database

import (
	"fmt"
	"log"

	"github.com/toniliu672/ira-server-sub000/internal/config"
	"github.com/toniliu672/ira-server-sub000/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the answer service relies on to detect
	// a lost double-submit race.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if err := Migrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Student{},
		&models.Materi{},
		&models.Quiz{},
		&models.MultipleChoiceQuestion{},
		&models.QuestionOption{},
		&models.EssayQuestion{},
		&models.MultipleChoiceAnswer{},
		&models.EssayAnswer{},
	)
	if err != nil {
		return err
	}

	// At most one active answer per (student, question) per variant. The
	// partial unique index is what makes concurrent double-submits resolve
	// to exactly one winner.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_pg_answer_active
		ON multiple_choice_answers (student_id, question_id) WHERE status = 'active'`).Error; err != nil {
		return err
	}
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_essay_answer_active
		ON essay_answers (student_id, question_id) WHERE status = 'active'`).Error
}
