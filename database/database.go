package database

import (
	"context"
	"fmt"

	"hangman/config"
	"hangman/models"
	"hangman/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var Redis *redis.Client

var AdminUsername = "admin"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and
// populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Word{},
		&models.GameHistory{},
		&models.TeacherCourseAssignment{},
	)
	if err != nil {
		logrus.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// InitRedis connects the client used for the user session cache
func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		logrus.Fatal("failed to connect redis: ", err)
	}
}

// Populate creates the default admin account when the user table is empty
func Populate() {
	var countUser int64
	DB.Model(&models.User{}).Count(&countUser)
	if countUser != 0 {
		return
	}

	password := DefaultPassword
	if config.DefaultPassword != "" {
		password = config.DefaultPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		logrus.Fatal("failed to hash default admin password: ", err)
	}

	admin := models.User{
		Username: AdminUsername,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	DB.Create(&admin)
	logrus.Info("Default admin user created")
}
