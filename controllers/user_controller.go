package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlietlyons/VitaTrack-API/middlewares"
	"github.com/charlietlyons/VitaTrack-API/models"
	"github.com/charlietlyons/VitaTrack-API/services"
	"github.com/charlietlyons/VitaTrack-API/utils"
)

// UserManager is what this controller needs from the user service.
type UserManager interface {
	Register(ctx context.Context, payload services.RegisterPayload) (*models.User, error)
	Verify(ctx context.Context, email, password string) (string, error)
	VerifyToken(tokenString string) (*utils.Claims, error)
	GetUserDetails(ctx context.Context, email string) (*models.AccountDetails, error)
	UpdatePassword(ctx context.Context, email, newPassword string) error
	DeleteAll(ctx context.Context) (int64, error)
}

// DailyLogPreparer bootstraps the day's log at login time.
type DailyLogPreparer interface {
	PrepareDailyLog(ctx context.Context, email string) (*models.DailyLog, error)
}

type UserController struct {
	users     UserManager
	dailyLogs DailyLogPreparer
}

func NewUserController(users UserManager, dailyLogs DailyLogPreparer) *UserController {
	return &UserController{users: users, dailyLogs: dailyLogs}
}

func (uc *UserController) Register(c *gin.Context) {
	var payload services.RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := uc.users.Register(c.Request.Context(), payload)
	switch {
	case errors.Is(err, services.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user data"})
	case errors.Is(err, services.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
	case err != nil:
		slog.Error("register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "User created"})
	}
}

type verifyUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyUser checks credentials, bootstraps today's daily log and
// returns a bearer token.
func (uc *UserController) VerifyUser(c *gin.Context) {
	var input verifyUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := uc.users.Verify(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid email or password"})
		return
	}
	if err != nil {
		slog.Error("verify user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	if _, err := uc.dailyLogs.PrepareDailyLog(c.Request.Context(), input.Email); err != nil {
		slog.Error("daily log bootstrap failed", "email", input.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

type verifyTokenInput struct {
	Token string `json:"token"`
}

func (uc *UserController) VerifyToken(c *gin.Context) {
	var input verifyTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := uc.users.VerifyToken(input.Token)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": claims.Email, "userId": claims.UserID})
}

func (uc *UserController) AccountDetails(c *gin.Context) {
	email := c.GetString(middlewares.ContextEmail)

	details, err := uc.users.GetUserDetails(c.Request.Context(), email)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusForbidden, gin.H{"error": "user does not exist"})
		return
	}
	if err != nil {
		slog.Error("account details failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load account details"})
		return
	}

	c.JSON(http.StatusOK, details)
}

type updateUserInput struct {
	Password string `json:"password"`
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	email := c.GetString(middlewares.ContextEmail)

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := uc.users.UpdatePassword(c.Request.Context(), email, input.Password)
	switch {
	case errors.Is(err, services.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": "password required"})
	case err != nil:
		slog.Error("update user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "user updated"})
	}
}

// ResetUsers wipes the user collection. Development tooling, kept off
// production deployments.
func (uc *UserController) ResetUsers(c *gin.Context) {
	deleted, err := uc.users.DeleteAll(c.Request.Context())
	if err != nil {
		slog.Error("reset users failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
