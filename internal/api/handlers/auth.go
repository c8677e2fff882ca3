package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/campus-project/campus-server/internal/api/middleware"
	"github.com/campus-project/campus-server/internal/auth"
	"github.com/campus-project/campus-server/internal/database/queries"
	"github.com/campus-project/campus-server/internal/models"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and token verification
type AuthHandler struct {
	userQueries *queries.UserQueries
	tokens      *auth.TokenService
}

func NewAuthHandler(userQueries *queries.UserQueries, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		userQueries: userQueries,
		tokens:      tokens,
	}
}

// RegisterRequest carries the registration payload. Rol is optional and
// defaults to estudiante.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Cedula   string `json:"cedula"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user, minting a token keyed by email and capturing it
// on the inserted row. The plaintext password and cedula are never echoed.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" || req.Apellido == "" || req.Email == "" || req.Cedula == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	rol := req.Rol
	if rol == "" {
		rol = models.RoleStudent
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	token, err := h.tokens.IssueForEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	user := &models.User{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Cedula:   req.Cedula,
		Password: hashedPassword,
		Token:    token,
		Rol:      rol,
	}

	if err := h.userQueries.CreateUser(user); err != nil {
		if queries.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "El correo o la cédula ya están registrados"})
			return
		}
		log.Printf("Failed to register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario registrado con éxito",
		"token":   token,
		"usuario": user.Public(),
	})
}

// Login verifies credentials and mints a token carrying {id, email}.
// Unknown email and wrong password produce the same response so callers
// cannot enumerate accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email y contraseña son obligatorios"})
		return
	}

	user, err := h.userQueries.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña incorrectos"})
			return
		}
		log.Printf("Failed to look up user for login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña incorrectos"})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	// Best-effort copy of the last issued token onto the row.
	if err := h.userQueries.SaveToken(user.ID, token); err != nil {
		log.Printf("Failed to save issued token for user %d: %v", user.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login exitoso",
		"token":   token,
		"usuario": user.Public(),
	})
}

// VerifyToken re-checks the bearer token and confirms the user still
// exists. A deleted user's still-valid token is rejected here.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(int)

	user, err := h.userQueries.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  user.Public(),
	})
}

// Profile returns the public projection of the authenticated user.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(int)

	user, err := h.userQueries.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nombre":   user.Nombre,
		"apellido": user.Apellido,
		"email":    user.Email,
		"rol":      user.Rol,
	})
}

// Logout is decorative: tokens are self-expiring and no revocation list is
// kept, so this only acknowledges the client-side token removal.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada correctamente"})
}
