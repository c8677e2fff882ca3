package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/campus-project/campus-server/internal/database/queries"
	"github.com/gin-gonic/gin"
)

type LugarHandler struct {
	lugarQueries *queries.LugarQueries
}

func NewLugarHandler(lugarQueries *queries.LugarQueries) *LugarHandler {
	return &LugarHandler{lugarQueries: lugarQueries}
}

type LugarRequest struct {
	Nombre        string `json:"nombre"`
	FechaCreacion string `json:"fecha_creacion"`
}

func (h *LugarHandler) ListLugares(c *gin.Context) {
	lugares, err := h.lugarQueries.ListLugares()
	if err != nil {
		log.Printf("Failed to list lugares: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar los lugares"})
		return
	}
	c.JSON(http.StatusOK, lugares)
}

func (h *LugarHandler) CreateLugar(c *gin.Context) {
	var req LugarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre es obligatorio"})
		return
	}

	lugar, err := h.lugarQueries.CreateLugar(req.Nombre, req.FechaCreacion)
	if err != nil {
		log.Printf("Failed to create lugar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Lugar agregado", "lugar": lugar})
}

func (h *LugarHandler) UpdateLugar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req LugarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" || req.FechaCreacion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre y fecha de creación son obligatorios"})
		return
	}

	lugar, err := h.lugarQueries.UpdateLugar(id, req.Nombre, req.FechaCreacion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lugar no encontrado"})
			return
		}
		log.Printf("Failed to update lugar %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Lugar actualizado", "lugar": lugar})
}

func (h *LugarHandler) DeleteLugar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	lugar, err := h.lugarQueries.DeleteLugar(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lugar no encontrado"})
			return
		}
		log.Printf("Failed to delete lugar %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Lugar eliminado", "lugar": lugar})
}
