package api

import (
	"context"  // Service call signatures
	"net/http" // HTTP status codes
	"strings"  // Username trimming

	"github.com/gin-gonic/gin" // Gin web framework

	"trivia_backend/internal/account" // Account service
)

// AdjustWagesRequest is the body of PUT /wages
type AdjustWagesRequest struct {
	Delta *int64 `json:"delta" binding:"required"` // Signed change, zero allowed
}

// AdjustWagesResponse echoes the new balance and the applied delta
type AdjustWagesResponse struct {
	Username     string `json:"username"`      // Account username
	Wages        int64  `json:"wages"`         // Balance after the delta
	DeltaApplied int64  `json:"delta_applied"` // Delta as applied
}

// CheckWageRequest is the body of POST /checkWage
type CheckWageRequest struct {
	Amount *int64 `json:"amount" binding:"required"` // Requested wager
}

// CheckWageResponse reports a wager verdict
type CheckWageResponse struct {
	Status    string `json:"status"`            // "ok" or "error"
	Message   string `json:"message,omitempty"` // Rejection reason
	Wages     int64  `json:"wages"`             // Balance the check ran against
	Requested int64  `json:"requested"`         // Requested wager
}

// GetWagesHandler returns the current balance
func GetWagesHandler(svc *account.Service) gin.HandlerFunc {
	return counterHandler("wages", svc.Wages)
}

// AdjustWagesHandler applies a signed delta to the balance
func AdjustWagesHandler(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdjustWagesRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing or non-integer delta
			badRequest(c, "delta is required")
			return
		}
		username := strings.TrimSpace(c.Query("username"))
		wages, applied, err := svc.AdjustWages(c.Request.Context(), username, *req.Delta)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, AdjustWagesResponse{
			Username:     username,
			Wages:        wages,
			DeltaApplied: applied,
		})
	}
}

// GetGamesPlayedHandler returns the games played counter
func GetGamesPlayedHandler(svc *account.Service) gin.HandlerFunc {
	return counterHandler("gamesPlayed", svc.GamesPlayed)
}

// IncrementGamesPlayedHandler adds one to games played
func IncrementGamesPlayedHandler(svc *account.Service) gin.HandlerFunc {
	return counterHandler("gamesPlayed", svc.IncrementGamesPlayed)
}

// GetCorrectAnswersHandler returns the correct answers counter
func GetCorrectAnswersHandler(svc *account.Service) gin.HandlerFunc {
	return counterHandler("correctAnswers", svc.CorrectAnswers)
}

// IncrementCorrectAnswersHandler adds one to correct answers
func IncrementCorrectAnswersHandler(svc *account.Service) gin.HandlerFunc {
	return counterHandler("correctAnswers", svc.IncrementCorrectAnswers)
}

// GetIncorrectAnswersHandler returns the incorrect answers counter
func GetIncorrectAnswersHandler(svc *account.Service) gin.HandlerFunc {
	return counterHandler("incorrectAnswers", svc.IncorrectAnswers)
}

// IncrementIncorrectAnswersHandler adds one to incorrect answers
func IncrementIncorrectAnswersHandler(svc *account.Service) gin.HandlerFunc {
	return counterHandler("incorrectAnswers", svc.IncrementIncorrectAnswers)
}

// CheckWageHandler validates a wager against the current balance
func CheckWageHandler(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckWageRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "amount is required")
			return
		}
		verdict, err := svc.CheckWager(c.Request.Context(), c.Query("username"), *req.Amount)
		if err != nil {
			writeError(c, err)
			return
		}
		if !verdict.Accepted {
			// Rejections carry the balance so the client can show it
			c.JSON(http.StatusBadRequest, CheckWageResponse{
				Status:    "error",
				Message:   verdict.Reason,
				Wages:     verdict.Wages,
				Requested: verdict.Requested,
			})
			return
		}
		c.JSON(http.StatusOK, CheckWageResponse{
			Status:    "ok",
			Wages:     verdict.Wages,
			Requested: verdict.Requested,
		})
	}
}

// counterHandler serves {"username": ..., key: value} from a username-keyed
// service call. The username is echoed trimmed, as stored.
func counterHandler(key string, fn func(ctx context.Context, username string) (int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.Query("username"))
		value, err := fn(c.Request.Context(), username)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": username, key: value})
	}
}
