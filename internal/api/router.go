package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"trivia_backend/internal/account" // Account service
	"trivia_backend/internal/catalog" // Question catalog
)

// Config wires the handler dependencies
type Config struct {
	Accounts  *account.Service
	Questions *catalog.Catalog
}

// Register mounts every game route on r
func Register(r gin.IRouter, c Config) {
	// Health
	r.GET("/health", HealthHandler())

	// Auth routes
	r.POST("/register", RegisterHandler(c.Accounts)) // Registration endpoint
	r.POST("/login", LoginHandler(c.Accounts))       // Login endpoint

	// Account state routes, player identified by ?username=
	r.GET("/wages", GetWagesHandler(c.Accounts))                             // Current balance
	r.PUT("/wages", AdjustWagesHandler(c.Accounts))                          // Apply a signed delta
	r.GET("/gamesPlayed", GetGamesPlayedHandler(c.Accounts))                 // Games played
	r.PUT("/gamesPlayed", IncrementGamesPlayedHandler(c.Accounts))           // Games played + 1
	r.GET("/correctAnswers", GetCorrectAnswersHandler(c.Accounts))           // Correct answers
	r.PUT("/correctAnswers", IncrementCorrectAnswersHandler(c.Accounts))     // Correct answers + 1
	r.GET("/incorrectAnswers", GetIncorrectAnswersHandler(c.Accounts))       // Incorrect answers
	r.PUT("/incorrectAnswers", IncrementIncorrectAnswersHandler(c.Accounts)) // Incorrect answers + 1
	r.POST("/checkWage", CheckWageHandler(c.Accounts))                       // Wager validation

	// Question routes
	r.GET("/questions", RandomQuestionHandler(c.Questions)) // Random question by category
	r.GET("/category", RandomQuestionHandler(c.Questions))  // Alias kept for older clients
	r.GET("/categories", CategoriesHandler(c.Questions))    // Category listing
}

// HealthHandler reports liveness
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
