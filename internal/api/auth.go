package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"trivia_backend/internal/account" // Account service
)

// CredentialsRequest is the body of register and login
type CredentialsRequest struct {
	Username string `json:"username"` // Account username
	Password string `json:"password"` // Opaque credential
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Message  string `json:"message"`  // Always "registered"
	Username string `json:"username"` // Normalized username
}

// LoginUser identifies the logged in account
type LoginUser struct {
	ID       uint   `json:"id"`       // Account id
	Username string `json:"username"` // Account username
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Message string    `json:"message"` // Always "login ok"
	User    LoginUser `json:"user"`    // Logged in account
}

// RegisterHandler creates a new account
func RegisterHandler(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			badRequest(c, "invalid request")
			return
		}
		// Empty fields and duplicates are rejected by the service
		username, err := svc.Register(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, RegisterResponse{Message: "registered", Username: username})
	}
}

// LoginHandler checks a username and credential pair
func LoginHandler(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			badRequest(c, "invalid request")
			return
		}
		acc, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, LoginResponse{
			Message: "login ok",                                    // Fixed message
			User:    LoginUser{ID: acc.ID, Username: acc.Username}, // Account identity
		})
	}
}
