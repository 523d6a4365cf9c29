package database

import (
	"fmt"
	"log"
	"time"

	config "github.com/anjiri1684/pesuconnect/configs"
	"github.com/anjiri1684/pesuconnect/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the connection pool. A failure here is fatal for both
// front ends, so callers exit on error.
func ConnectDB(cfg config.DBConfig, production bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	if production {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	log.Println("✅ Database connected successfully")
	return db, nil
}

// Migrate creates the tables for local development. Stored procedures and
// functions are owned by the schema scripts and are not created here.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Student{},
		&models.Project{},
		&models.Skill{},
		&models.StudentSkill{},
		&models.Application{},
		&models.Contract{},
		&models.Review{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Println("✅ Database migration successful")
	return nil
}

var starterSkills = []string{"Python", "Go", "Java", "Web Development", "Graphic Design", "Video Editing", "Technical Writing"}

// SeedSkills makes sure the common skills exist so the first students can
// pick from a non-empty catalogue.
func SeedSkills(db *gorm.DB) error {
	skills := make([]models.Skill, 0, len(starterSkills))
	for _, name := range starterSkills {
		skills = append(skills, models.Skill{SkillName: name})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&skills).Error; err != nil {
		return fmt.Errorf("seed skills: %w", err)
	}
	log.Println("✅ Skill catalogue seeded")
	return nil
}
