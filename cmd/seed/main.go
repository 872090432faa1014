// Seeds the sample practice-test bank. Safe to re-run: tests are keyed by
// stable IDs and upserted.
package main

import (
	"context"
	"log"
	"time"

	"github.com/roadready/roadready-backend/internal/config"
	"github.com/roadready/roadready-backend/internal/db"
	"github.com/roadready/roadready-backend/internal/prep"
)

func intp(v int) *int { return &v }

var sampleTests = []prep.Test{
	{
		ID:           "ca-practice-basic-rules",
		Title:        "California Practice Test - Basic Rules",
		State:        "CA",
		Category:     "practice",
		Description:  "Basic traffic rules and regulations for California",
		Difficulty:   "easy",
		PassingScore: 80,
		TimeLimitMin: 30,
		IsActive:     true,
		Questions: []prep.Question{
			{
				Question:      "What is the speed limit in a school zone?",
				Options:       []string{"15 mph", "20 mph", "25 mph", "30 mph"},
				CorrectAnswer: intp(2),
				Explanation:   "The speed limit in a school zone is typically 25 mph when children are present.",
			},
			{
				Question:      "When should you use your turn signals?",
				Options:       []string{"Only when changing lanes", "At least 100 feet before turning", "Only in heavy traffic", "Never"},
				CorrectAnswer: intp(1),
				Explanation:   "You should signal at least 100 feet before making a turn or changing lanes.",
			},
			{
				Question:      "What does a red traffic light mean?",
				Options:       []string{"Slow down", "Stop completely", "Proceed with caution", "Yield"},
				CorrectAnswer: intp(1),
				Explanation:   "A red traffic light means you must come to a complete stop.",
			},
		},
	},
	{
		ID:           "tx-practice-road-signs",
		Title:        "Texas Practice Test - Road Signs",
		State:        "TX",
		Category:     "practice",
		Description:  "Learn about road signs in Texas",
		Difficulty:   "medium",
		PassingScore: 80,
		TimeLimitMin: 30,
		IsActive:     true,
		Questions: []prep.Question{
			{
				Question:      "What does a yellow diamond-shaped sign indicate?",
				Options:       []string{"Stop ahead", "Warning", "Speed limit", "No parking"},
				CorrectAnswer: intp(1),
				Explanation:   "Yellow diamond-shaped signs are warning signs that alert drivers to potential hazards.",
			},
			{
				Question:      "What does a red octagonal sign mean?",
				Options:       []string{"Yield", "Stop", "No entry", "Wrong way"},
				CorrectAnswer: intp(1),
				Explanation:   "A red octagonal sign is a stop sign, requiring a complete stop.",
			},
			{
				Question:      "What color are construction signs?",
				Options:       []string{"Red", "Blue", "Orange", "Green"},
				CorrectAnswer: intp(2),
				Explanation:   "Construction and work zone signs are typically orange.",
			},
		},
	},
	{
		ID:           "fl-mock-complete",
		Title:        "Florida Mock Test - Complete",
		State:        "FL",
		Category:     "mock",
		Description:  "Complete mock test for Florida driver license",
		Difficulty:   "hard",
		PassingScore: 80,
		TimeLimitMin: 45,
		IsActive:     true,
		Questions: []prep.Question{
			{
				Question:      "What is the legal blood alcohol limit for drivers 21 and over?",
				Options:       []string{"0.05%", "0.08%", "0.10%", "0.15%"},
				CorrectAnswer: intp(1),
				Explanation:   "The legal blood alcohol limit is 0.08% for drivers 21 and over.",
			},
			{
				Question:      "When should you yield the right-of-way?",
				Options:       []string{"At stop signs", "To emergency vehicles", "At green lights", "Never"},
				CorrectAnswer: intp(1),
				Explanation:   "You must always yield the right-of-way to emergency vehicles with lights and sirens.",
			},
			{
				Question:      "What should you do if you miss your exit on the highway?",
				Options:       []string{"Reverse", "Stop immediately", "Continue to next exit", "Make a U-turn"},
				CorrectAnswer: intp(2),
				Explanation:   "If you miss your exit, continue to the next exit. Never reverse or stop on the highway.",
			},
		},
	},
	{
		ID:           "ny-official-prep",
		Title:        "New York Official Test Prep",
		State:        "NY",
		Category:     "official",
		Description:  "Official test preparation for New York",
		Difficulty:   "hard",
		PassingScore: 80,
		TimeLimitMin: 45,
		IsActive:     true,
		Questions: []prep.Question{
			{
				Question:      "What is the penalty for texting while driving in New York?",
				Options:       []string{"Warning", "Fine only", "Fine and points", "License suspension"},
				CorrectAnswer: intp(2),
				Explanation:   "Texting while driving results in fines and points on your license.",
			},
			{
				Question:      "When parking on a hill, which way should you turn your wheels?",
				Options:       []string{"Straight", "Away from curb", "Toward curb", "Does not matter"},
				CorrectAnswer: intp(1),
				Explanation:   "When parking uphill, turn wheels away from the curb. When parking downhill, turn toward the curb.",
			},
			{
				Question:      "What is the minimum following distance in good conditions?",
				Options:       []string{"1 second", "2 seconds", "3 seconds", "4 seconds"},
				CorrectAnswer: intp(2),
				Explanation:   "Maintain at least a 3-second following distance in good conditions.",
			},
		},
	},
}

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer dbh.Close()

	store := prep.NewSQLStore(dbh)
	for _, t := range sampleTests {
		if err := store.PutTest(ctx, t); err != nil {
			log.Fatalf("seed %s: %v", t.ID, err)
		}
	}
	log.Printf("seeded %d sample tests", len(sampleTests))
}
