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

type EdificioHandler struct {
	edificioQueries *queries.EdificioQueries
}

func NewEdificioHandler(edificioQueries *queries.EdificioQueries) *EdificioHandler {
	return &EdificioHandler{edificioQueries: edificioQueries}
}

type EdificioRequest struct {
	Nombre      string `json:"nombre"`
	LugarID     int    `json:"lugar_id"`
	CategoriaID int    `json:"categoria_id"`
}

// ListEdificios lists buildings, optionally narrowed by ?categoria_id= and
// ?lugar_id= combined with AND.
func (h *EdificioHandler) ListEdificios(c *gin.Context) {
	categoriaID, err := intQuery(c, "categoria_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro categoria_id inválido"})
		return
	}
	lugarID, err := intQuery(c, "lugar_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro lugar_id inválido"})
		return
	}

	edificios, err := h.edificioQueries.ListEdificios(queries.EdificioFilter{
		CategoriaID: categoriaID,
		LugarID:     lugarID,
	})
	if err != nil {
		log.Printf("Failed to list edificios: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}
	c.JSON(http.StatusOK, edificios)
}

func (h *EdificioHandler) CreateEdificio(c *gin.Context) {
	var req EdificioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" || req.LugarID == 0 || req.CategoriaID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	edificio, err := h.edificioQueries.CreateEdificio(req.Nombre, req.LugarID, req.CategoriaID)
	if err != nil {
		log.Printf("Failed to create edificio: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Edificación agregada", "edificio": edificio})
}

func (h *EdificioHandler) UpdateEdificio(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req EdificioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	edificio, err := h.edificioQueries.UpdateEdificio(id, req.Nombre, req.LugarID, req.CategoriaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Edificación no encontrada"})
			return
		}
		log.Printf("Failed to update edificio %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Edificación actualizada", "edificio": edificio})
}

func (h *EdificioHandler) DeleteEdificio(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	if _, err := h.edificioQueries.DeleteEdificio(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Edificación no encontrada"})
			return
		}
		log.Printf("Failed to delete edificio %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Edificación eliminada correctamente"})
}
