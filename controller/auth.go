package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ezeflt/horizon-ai/logic"
)

// AuthController handles registration and login HTTP requests.
type AuthController struct {
	userLogic *logic.UserLogic
}

func NewAuthController(userLogic *logic.UserLogic) *AuthController {
	return &AuthController{userLogic: userLogic}
}

// Register handles POST /api/auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	if !strings.Contains(req.Email, "@") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}
	if len(req.Password) < 6 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "password must contain at least 6 characters"})
		return
	}

	creds, err := c.userLogic.Register(req.Email, req.Password)
	if err != nil {
		if err == logic.ErrEmailTaken {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, creds)
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	creds, err := c.userLogic.Login(req.Email, req.Password)
	if err != nil {
		if err == logic.ErrInvalidCredentials {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, creds)
}
