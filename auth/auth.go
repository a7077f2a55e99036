package auth

import (
	"errors"
	"net/http"
	"os"
	"regexp"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mibon4ik/toyota-sub000/store"
)

// vinPattern is the standard 17-character VIN alphabet; I, O and Q are
// excluded to avoid confusion with 1 and 0.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Za-hj-npr-z0-9]{17}$`)

type RegisterInput struct {
	Username    string `json:"username" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CarMake     string `json:"carMake" binding:"required"`
	CarModel    string `json:"carModel" binding:"required"`
	VINCode     string `json:"vinCode" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func RegisterHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !vinPattern.MatchString(input.VINCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "VIN code must be 17 characters (letters except I, O, Q, and digits)"})
			return
		}
		if !validPassword(input.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters and contain a letter and a digit"})
			return
		}

		user, err := users.Create(store.CreateUserInput{
			Username:    input.Username,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
			Password:    input.Password,
			CarMake:     input.CarMake,
			CarModel:    input.CarModel,
			VINCode:     input.VINCode,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicateEmail),
				errors.Is(err, store.ErrDuplicateVIN),
				errors.Is(err, store.ErrDuplicateUsername):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, store.ErrMissingPassword):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			}
			return
		}

		token, err := IssueToken(user.ID, user.IsAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
	}
}

// POST /auth/login
func LoginHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := users.VerifyPassword(input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		// Same response for unknown email and wrong password.
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := IssueToken(user.ID, user.IsAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// IssueToken signs a 24h HS256 session token.
func IssueToken(userID string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func validPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range p {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
