package adminController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mibon4ik/toyota-sub000/models"
	"github.com/mibon4ik/toyota-sub000/store"
)

type AdminUpdateUserInput struct {
	Username    *string `json:"username"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	CarMake     *string `json:"carMake"`
	CarModel    *string `json:"carModel"`
	VINCode     *string `json:"vinCode"`
	IsAdmin     *bool   `json:"isAdmin"`
}

type ResetPasswordInput struct {
	Password string `json:"password" binding:"required,min=8"`
}

// GET /admin/users/lookup?email=...&vin=...
// Finds a user by email or VIN; email wins when both are given.
func LookupUser(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		vin := c.Query("vin")
		if email == "" && vin == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email or vin query parameter is required"})
			return
		}

		var (
			user *models.User
			err  error
		)
		if email != "" {
			user, err = users.GetByEmail(email)
		} else {
			user, err = users.GetByVIN(vin)
		}
		if err != nil {
			log.Println("❌ Failed to look up user:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /admin/users/:id
func UpdateUser(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input AdminUpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := users.Update(id, store.UpdateUserInput{
			Username:    input.Username,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
			CarMake:     input.CarMake,
			CarModel:    input.CarModel,
			VINCode:     input.VINCode,
			IsAdmin:     input.IsAdmin,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			case errors.Is(err, store.ErrDuplicateEmail),
				errors.Is(err, store.ErrDuplicateVIN),
				errors.Is(err, store.ErrDuplicateUsername):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				log.Println("❌ Failed to update user:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			}
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /admin/users/:id/password
func ResetUserPassword(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input ResetPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := users.UpdatePassword(id, input.Password); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			log.Println("❌ Failed to reset password:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
	}
}
