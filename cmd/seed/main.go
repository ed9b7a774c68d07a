package main

import (
	"log"
	"os"
	"time"

	"moodmate-be/internal/model"
	"moodmate-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo account with a few journal rows so a fresh install has
// something to show on the timeline and history views.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding demo account...")

	var existing model.User
	if err := db.Where("username = ?", "demo").First(&existing).Error; err == nil {
		log.Println("User 'demo' already exists, skipping...")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash demo password:", err)
	}

	user := model.User{Username: "demo", Password: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: Failed to create demo user:", err)
	}
	log.Printf("Created user: demo (id=%d)", user.Id)

	title := "First entry"
	journals := []model.Journal{
		{UserId: user.Id, Timestamp: time.Now().Add(-48 * time.Hour), Emotion: "Happy", Title: &title, Entry: "Started using MoodMate today. Feeling good and thankful."},
		{UserId: user.Id, Timestamp: time.Now().Add(-24 * time.Hour), Emotion: "Tired", Entry: "Long day at work, could use some rest."},
		{UserId: user.Id, Timestamp: time.Now().Add(-2 * time.Hour), Emotion: "Excited", Entry: "Weekend plans are coming together!"},
	}

	for _, j := range journals {
		if err := db.Create(&j).Error; err != nil {
			log.Printf("Error creating journal row: %v", err)
		} else {
			log.Printf("Created journal: %s (%s)", j.Entry[:20], j.Emotion)
		}
	}

	log.Println("Seeding completed!")
}
