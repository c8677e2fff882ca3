package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/campus-project/campus-server/internal/database/queries"
	"github.com/campus-project/campus-server/internal/models"
	"github.com/gin-gonic/gin"
)

type BloqueHandler struct {
	bloqueQueries *queries.BloqueQueries
}

func NewBloqueHandler(bloqueQueries *queries.BloqueQueries) *BloqueHandler {
	return &BloqueHandler{bloqueQueries: bloqueQueries}
}

type BloqueRequest struct {
	Nombre       string   `json:"nombre"`
	Descripcion  string   `json:"descripcion"`
	Latitud      *float64 `json:"latitud"`
	Longitud     *float64 `json:"longitud"`
	EdificiosID  int      `json:"edificios_id"`
	Laboratorios []string `json:"laboratorios"`
}

// ListBloques returns the enriched block listing, narrowed by the optional
// ?edificio_id=, ?lugar_id= and ?categoria_id= filters.
func (h *BloqueHandler) ListBloques(c *gin.Context) {
	edificioID, err := intQuery(c, "edificio_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro edificio_id inválido"})
		return
	}
	lugarID, err := intQuery(c, "lugar_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro lugar_id inválido"})
		return
	}
	categoriaID, err := intQuery(c, "categoria_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro categoria_id inválido"})
		return
	}

	bloques, err := h.bloqueQueries.ListBloques(queries.BloqueFilter{
		EdificioID:  edificioID,
		LugarID:     lugarID,
		CategoriaID: categoriaID,
	})
	if err != nil {
		log.Printf("Failed to list bloques: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}
	c.JSON(http.StatusOK, bloques)
}

// GetBloque returns one block with its building name and coordinates.
func (h *BloqueHandler) GetBloque(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	bloque, err := h.bloqueQueries.GetBloque(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bloque no encontrado"})
			return
		}
		log.Printf("Failed to get bloque %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, bloque)
}

// GetLaboratorios returns the lab list of the block given by ?bloque_id=,
// or an empty list when the block does not exist.
func (h *BloqueHandler) GetLaboratorios(c *gin.Context) {
	bloqueID, err := intQuery(c, "bloque_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro bloque_id inválido"})
		return
	}

	labs, err := h.bloqueQueries.GetLaboratorios(bloqueID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusOK, []string{})
			return
		}
		log.Printf("Failed to get laboratorios for bloque %d: %v", bloqueID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, labs)
}

func (h *BloqueHandler) CreateBloque(c *gin.Context) {
	var req BloqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" || req.EdificiosID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre y el edificio son obligatorios"})
		return
	}

	if req.Laboratorios == nil {
		req.Laboratorios = []string{}
	}

	bloque := &models.Bloque{
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		Latitud:      req.Latitud,
		Longitud:     req.Longitud,
		EdificiosID:  req.EdificiosID,
		Laboratorios: req.Laboratorios,
	}

	if err := h.bloqueQueries.CreateBloque(bloque); err != nil {
		log.Printf("Failed to create bloque: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Bloque agregado", "bloque": bloque})
}

func (h *BloqueHandler) UpdateBloque(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req BloqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Laboratorios == nil {
		req.Laboratorios = []string{}
	}

	bloque := &models.Bloque{
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		Latitud:      req.Latitud,
		Longitud:     req.Longitud,
		EdificiosID:  req.EdificiosID,
		Laboratorios: req.Laboratorios,
	}

	if err := h.bloqueQueries.UpdateBloque(id, bloque); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bloque no encontrado"})
			return
		}
		log.Printf("Failed to update bloque %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Bloque actualizado", "bloque": bloque})
}

func (h *BloqueHandler) DeleteBloque(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	if _, err := h.bloqueQueries.DeleteBloque(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bloque no encontrado"})
			return
		}
		log.Printf("Failed to delete bloque %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Bloque eliminado correctamente"})
}
