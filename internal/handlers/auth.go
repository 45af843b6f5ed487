package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/auth"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/serenity-space/serenity/internal/repos"
	"github.com/serenity-space/serenity/internal/services"
	"github.com/serenity-space/serenity/internal/types"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=8"`
	Role              string `json:"role"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	City              string `json:"city"`
	State             string `json:"state"`
	Country           string `json:"country"`
	Description       string `json:"description"`
	University        string `json:"university"`
	Speciality        string `json:"speciality"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Role == "" {
		req.Role = models.RoleIndividual
	}

	if !models.ValidRole(req.Role) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	existing, err := repos.FindUserByEmail(req.Email)

	if err != nil {
		log.Printf("Failed to check existing user: %v", err)
		respondError(ctx, err)
		return
	}

	if existing != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user"})
		return
	}

	user := models.User{
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      string(passwordHash),
		Role:              req.Role,
		ProfilePictureURL: req.ProfilePictureURL,
		City:              req.City,
		State:             req.State,
		Country:           req.Country,
		Description:       req.Description,
		University:        req.University,
		Speciality:        req.Speciality,
	}

	if err := repos.CreateUser(&user); err != nil {
		log.Printf("Failed to create user: %v", err)
		respondError(ctx, err)
		return
	}

	// Welcome mail is best-effort and must not block or fail registration.
	switch user.Role {
	case models.RoleDoctor:
		go services.Mail.SendDoctorWelcome(user.Name, user.Email)
	case models.RoleIndividual:
		go services.Mail.SendIndividualWelcome(user.Name, user.Email)
	}

	token, err := auth.GenerateJWT(user.ID)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  types.NewUserResponse(user),
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := repos.FindUserByEmail(req.Email)

	if err != nil {
		log.Printf("Failed to fetch user: %v", err)
		respondError(ctx, err)
		return
	}

	if user == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(user.ID)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  types.NewUserResponse(*user),
	})
}
