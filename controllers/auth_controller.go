package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/models"
	"storefront-api/services"
	"storefront-api/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register new user
// @Description Register a new user account (shared-secret header required)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param x-api-key header string true "API key"
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.RegisterResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	_ = c.ShouldBindJSON(&req)

	userID, err := ctrl.auth.Register(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Please provide name, email, and password",
		})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Email already registered. Use a different email.",
		})
	case err != nil:
		log.Printf("Registration error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to register user",
			Error:   err.Error(),
		})
	default:
		log.Printf("User registered with ID: %d", userID)
		c.JSON(http.StatusCreated, models.RegisterResponse{
			Message: "User registered successfully",
			UserID:  userID,
		})
	}
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	_ = c.ShouldBindJSON(&req)

	token, user, err := ctrl.auth.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Please provide email and password",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid email or password",
		})
	case errors.Is(err, utils.ErrMissingSecret):
		log.Println("JWT_SECRET is missing in environment variables")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Server error: missing authentication key",
		})
	case err != nil:
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to login",
			Error:   err.Error(),
		})
	default:
		log.Printf("Login successful - User: %s", user.Email)
		c.JSON(http.StatusOK, models.LoginResponse{
			Message: "Login successful",
			Token:   token,
			User:    *user,
		})
	}
}

// AdminLogin godoc
// @Summary Admin login
// @Description Login restricted to admin accounts
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.AdminLoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/admin/login [post]
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	_ = c.ShouldBindJSON(&req)

	token, err := ctrl.auth.LoginAdmin(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Please provide email and password",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid credentials",
		})
	case errors.Is(err, utils.ErrMissingSecret):
		log.Println("JWT_SECRET is missing in environment variables")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Server error: missing authentication key",
		})
	case err != nil:
		log.Printf("Admin login error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to login",
			Error:   err.Error(),
		})
	default:
		c.JSON(http.StatusOK, models.AdminLoginResponse{Token: token})
	}
}
