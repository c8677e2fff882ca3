package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/campus-project/campus-server/internal/auth"
	"github.com/campus-project/campus-server/internal/cache"
	"github.com/campus-project/campus-server/internal/database/queries"
	"github.com/campus-project/campus-server/internal/models"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the admin-only user management endpoints
type UserHandler struct {
	userQueries *queries.UserQueries
	roleCache   *cache.RoleCache
}

func NewUserHandler(userQueries *queries.UserQueries, roleCache *cache.RoleCache) *UserHandler {
	return &UserHandler{
		userQueries: userQueries,
		roleCache:   roleCache,
	}
}

type UserRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Cedula   string `json:"cedula"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// ListUsers returns every user. Credential fields never serialize.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userQueries.ListUsers()
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser lets an admin create a user directly, without minting a token.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
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

	user := &models.User{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Cedula:   req.Cedula,
		Password: hashedPassword,
		Rol:      rol,
	}

	if err := h.userQueries.CreateUser(user); err != nil {
		if queries.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "El correo o la cédula ya están registrados"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusCreated, user.Public())
}

// UpdateUser overwrites a user's profile fields. The password is re-hashed
// only when a non-empty one is sent; otherwise the stored digest stays.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	hashedPassword := ""
	if req.Password != "" {
		hashedPassword, err = auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
			return
		}
	}

	user, err := h.userQueries.UpdateUser(id, req.Nombre, req.Apellido, req.Email, req.Cedula, req.Rol, hashedPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		if queries.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "El correo o la cédula ya están registrados"})
			return
		}
		log.Printf("Failed to update user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	// The role may have changed; drop the cached copy immediately.
	h.roleCache.Invalidate(c.Request.Context(), id)

	c.JSON(http.StatusOK, user.Public())
}

// DeleteUser hard-deletes a user row.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	if err := h.userQueries.DeleteUser(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		log.Printf("Failed to delete user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	h.roleCache.Invalidate(c.Request.Context(), id)

	c.JSON(http.StatusOK, gin.H{"mensaje": "Usuario eliminado correctamente"})
}
