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

type EvaluacionHandler struct {
	evaluacionQueries *queries.EvaluacionQueries
}

func NewEvaluacionHandler(evaluacionQueries *queries.EvaluacionQueries) *EvaluacionHandler {
	return &EvaluacionHandler{evaluacionQueries: evaluacionQueries}
}

type EvaluacionRequest struct {
	Nombre       string   `json:"nombre"`
	LugarID      int      `json:"lugar_id"`
	CategoriaID  int      `json:"categoria_id"`
	EdificioID   int      `json:"edificio_id"`
	BloqueID     int      `json:"bloque_id"`
	Laboratorios []string `json:"laboratorios"`
	FechaInicio  string   `json:"fecha_inicio"`
	FechaFin     string   `json:"fecha_fin"`
	Horarios     string   `json:"horarios"`
}

func (r *EvaluacionRequest) toModel() *models.Evaluacion {
	labs := r.Laboratorios
	if labs == nil {
		labs = []string{}
	}
	return &models.Evaluacion{
		Nombre:       r.Nombre,
		LugarID:      r.LugarID,
		CategoriaID:  r.CategoriaID,
		EdificioID:   r.EdificioID,
		BloqueID:     r.BloqueID,
		Laboratorios: labs,
		FechaInicio:  r.FechaInicio,
		FechaFin:     r.FechaFin,
		Horarios:     r.Horarios,
	}
}

// ListEvaluaciones returns the enriched view. Evaluations with dangling
// references are filtered by the inner joins and do not appear.
func (h *EvaluacionHandler) ListEvaluaciones(c *gin.Context) {
	evaluaciones, err := h.evaluacionQueries.ListEvaluaciones()
	if err != nil {
		log.Printf("Failed to list evaluaciones: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}
	c.JSON(http.StatusOK, evaluaciones)
}

func (h *EvaluacionHandler) CreateEvaluacion(c *gin.Context) {
	var req EvaluacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" || req.LugarID == 0 || req.CategoriaID == 0 || req.EdificioID == 0 || req.BloqueID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios"})
		return
	}

	ev := req.toModel()
	if err := h.evaluacionQueries.CreateEvaluacion(ev); err != nil {
		log.Printf("Failed to create evaluacion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear evaluación"})
		return
	}

	c.JSON(http.StatusCreated, ev)
}

func (h *EvaluacionHandler) UpdateEvaluacion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req EvaluacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	ev := req.toModel()
	if err := h.evaluacionQueries.UpdateEvaluacion(id, ev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Evaluación no encontrada"})
			return
		}
		log.Printf("Failed to update evaluacion %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al modificar evaluación"})
		return
	}

	c.JSON(http.StatusOK, ev)
}

func (h *EvaluacionHandler) DeleteEvaluacion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	if _, err := h.evaluacionQueries.DeleteEvaluacion(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Evaluación no encontrada"})
			return
		}
		log.Printf("Failed to delete evaluacion %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar evaluación"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Evaluación eliminada correctamente"})
}
