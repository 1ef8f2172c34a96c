package database

import (
	"fmt"
	"log"

	"vidyai_backend/internal/config"
	"vidyai_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedContent(db)

	return db, nil
}

// Migrate creates or updates all tables. Split out so tests can run it
// against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.StudentProfile{},
		&model.MentorProfile{},
		&model.MentorStudentRelationship{},
		&model.LearningContent{},
		&model.LearningActivity{},
		&model.Achievement{},
		&model.EmotionLog{},
		&model.LearningStyleAssessment{},
		&model.OfflineContent{},
	)
}

// seedContent inserts a starter catalogue so a fresh install has something
// to serve on /learn.
func seedContent(db *gorm.DB) {
	var count int64
	db.Model(&model.LearningContent{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.LearningContent{
		{
			Title:           "Introduction to Fractions",
			Description:     "What fractions are and how to read them",
			ContentType:     "text",
			DifficultyLevel: 1,
			Subject:         "mathematics",
			Language:        model.English,
			Content:         "A fraction names a part of a whole...",
		},
		{
			Title:           "The Water Cycle",
			Description:     "Evaporation, condensation and precipitation",
			ContentType:     "text",
			DifficultyLevel: 2,
			Subject:         "science",
			Language:        model.English,
			Content:         "Water moves through the environment in a cycle...",
		},
		{
			Title:           "सौर मंडल",
			Description:     "Our solar system, in Hindi",
			ContentType:     "text",
			DifficultyLevel: 2,
			Subject:         "science",
			Language:        model.Hindi,
			Content:         "सौर मंडल में सूर्य और आठ ग्रह हैं...",
		},
		{
			Title:           "Parts of Speech",
			Description:     "Nouns, verbs and adjectives",
			ContentType:     "quiz",
			DifficultyLevel: 3,
			Subject:         "english",
			Language:        model.English,
			Content:         "Every word in a sentence does a job...",
		},
	}
	for _, c := range defaults {
		db.Create(&c)
	}
}
