package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatsomint/pawfectfind-be/internal/api/auth"
	"github.com/thatsomint/pawfectfind-be/internal/api/domain"
	"github.com/thatsomint/pawfectfind-be/internal/api/dto"
	"github.com/thatsomint/pawfectfind-be/internal/api/model"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	logger *slog.Logger
	users  UserStore
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(logger *slog.Logger, users UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: auth.HashPassword(req.Password),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
	}

	if err := h.users.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
			return
		}

		h.logger.Error("Failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to register user",
		})
		return
	}

	token, err := h.tokens.Issue(&user)
	if err != nil {
		h.logger.Error("Failed to issue access token",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to register user",
		})
		return
	}

	h.logger.Info("User registered",
		slog.Int64("user_id", user.ID),
	)

	c.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken: token,
		User:        toUserDTO(&user),
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": domain.ErrInvalidCredentials.Error(),
			})
			return
		}

		h.logger.Error("Failed to look up user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to log in",
		})
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": domain.ErrInvalidCredentials.Error(),
		})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("Failed to issue access token",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to log in",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: token,
		User:        toUserDTO(user),
	})
}

func toUserDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
