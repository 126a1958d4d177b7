package main

import (
	"log"
	"time"

	"careerbridge-be/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedDemoUsers creates one recruiter and one jobseeker account, both
// verified and active so they can log in immediately.
func SeedDemoUsers(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warn: Failed to hash demo password: %v", err)
		return
	}
	passwordHash := string(hash)
	now := time.Now()
	headline := "Backend engineer, 4 years of Go and PostgreSQL"
	company := "Acme Recruiting"

	users := []model.User{
		{
			Email:           "recruiter@careerbridge.dev",
			PasswordHash:    &passwordHash,
			FullName:        "Rina Recruiter",
			Role:            "recruiter",
			Status:          "active",
			EmailVerified:   true,
			EmailVerifiedAt: &now,
			CompanyName:     &company,
		},
		{
			Email:           "candidate@careerbridge.dev",
			PasswordHash:    &passwordHash,
			FullName:        "Candra Candidate",
			Role:            "jobseeker",
			Status:          "active",
			EmailVerified:   true,
			EmailVerifiedAt: &now,
			Headline:        &headline,
		},
	}

	for _, u := range users {
		var existing model.User
		err := db.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			log.Printf("Skip: User %s already exists", u.Email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("Warn: Failed to check user %s: %v", u.Email, err)
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("Warn: Failed to create user %s: %v", u.Email, err)
			continue
		}
		log.Printf("Created user %s (%s)", u.Email, u.Role)
	}
}

// SeedDemoJobs creates a handful of open jobs for the demo recruiter,
// one per interview question pool.
func SeedDemoJobs(db *gorm.DB) {
	var recruiter model.User
	if err := db.Where("email = ?", "recruiter@careerbridge.dev").First(&recruiter).Error; err != nil {
		log.Printf("Warn: Demo recruiter not found, skipping job seed: %v", err)
		return
	}

	min1, max1 := 9000000, 16000000
	min2, max2 := 12000000, 20000000

	jobs := []model.Job{
		{
			RecruiterId:   recruiter.Id,
			Title:         "Backend Engineer (Go)",
			Description:   "Build and operate the services behind our job marketplace.",
			Requirements:  datatypes.JSON([]byte(`["Go", "PostgreSQL", "NATS or similar message broker"]`)),
			Location:      "Jakarta",
			Type:          "full-time",
			SalaryMin:     &min1,
			SalaryMax:     &max1,
			InterviewRole: "software-developer",
			Status:        "open",
		},
		{
			RecruiterId:   recruiter.Id,
			Title:         "Data Scientist",
			Description:   "Own the matching and ranking models end to end.",
			Requirements:  datatypes.JSON([]byte(`["Python", "SQL", "Experiment design"]`)),
			Location:      "Remote",
			Type:          "full-time",
			SalaryMin:     &min2,
			SalaryMax:     &max2,
			InterviewRole: "data-scientist",
			Status:        "open",
		},
		{
			RecruiterId:   recruiter.Id,
			Title:         "Product Manager",
			Description:   "Drive the candidate experience roadmap.",
			Requirements:  datatypes.JSON([]byte(`["Product discovery", "Stakeholder management"]`)),
			Location:      "Bandung",
			Type:          "full-time",
			InterviewRole: "product-manager",
			Status:        "open",
		},
		{
			RecruiterId:   recruiter.Id,
			Title:         "Growth Marketing Intern",
			Description:   "Run acquisition experiments across channels.",
			Requirements:  datatypes.JSON([]byte(`["Copywriting", "Basic analytics"]`)),
			Location:      "Remote",
			Type:          "internship",
			InterviewRole: "marketing",
			Status:        "open",
		},
	}

	for _, j := range jobs {
		var count int64
		db.Model(&model.Job{}).Where("recruiter_id = ? AND title = ?", j.RecruiterId, j.Title).Count(&count)
		if count > 0 {
			log.Printf("Skip: Job %q already exists", j.Title)
			continue
		}
		if err := db.Create(&j).Error; err != nil {
			log.Printf("Warn: Failed to create job %q: %v", j.Title, err)
			continue
		}
		log.Printf("Created job %q (%s)", j.Title, j.InterviewRole)
	}
}
