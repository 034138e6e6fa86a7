package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"maxcleaners/models"
	"maxcleaners/services"
	"maxcleaners/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	customerService *services.CustomerService
}

func NewAuthController() *AuthController {
	return &AuthController{
		customerService: services.NewCustomerService(),
	}
}

// Signup godoc
// @Summary Register new customer
// @Description Create a customer account and issue a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup Request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Router /signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	customer, err := ctrl.customerService.Signup(req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicatePhone):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: "Phone number already registered",
			})
		case errors.Is(err, models.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Status:  http.StatusInternalServerError,
				Message: "Failed to register customer. Please try again later.",
			})
		}
		return
	}

	token, err := utils.GenerateToken(customer.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      customer.ID,
		"message": "Signup successful",
		"token":   token,
	})
}

// Signin godoc
// @Summary Customer login
// @Description Verify credentials and issue a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /signin [post]
func (ctrl *AuthController) Signin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	customer, err := ctrl.customerService.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Status:  http.StatusNotFound,
				Message: "User not found",
			})
		case errors.Is(err, models.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Status:  http.StatusUnauthorized,
				Message: "Invalid password",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Status:  http.StatusInternalServerError,
				Message: "Login failed. Please try again later.",
			})
		}
		return
	}

	token, err := utils.GenerateToken(customer.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signin successful",
		"token":   token,
	})
}

// Signout godoc
// @Summary Sign out
// @Description Revoke the presented bearer token
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /signout [post]
func (ctrl *AuthController) Signout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "No token provided",
		})
		return
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if phone, err := utils.ExtractPhoneNumber(token); err == nil {
		log.Printf("Sign-out requested for phone number: %s", phone)
	}

	if err := utils.RevokeToken(token); err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyRevoked):
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Status:  http.StatusConflict,
				Message: "Token already signed out",
			})
		case errors.Is(err, models.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Status:  http.StatusUnauthorized,
				Message: "Token is expired",
			})
		case errors.Is(err, models.ErrTokenMalformed):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: "Invalid token",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Status:  http.StatusInternalServerError,
				Message: "Sign-out failed. Please try again later.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sign-out successful"})
}
