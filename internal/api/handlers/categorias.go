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

type CategoriaHandler struct {
	categoriaQueries *queries.CategoriaQueries
}

func NewCategoriaHandler(categoriaQueries *queries.CategoriaQueries) *CategoriaHandler {
	return &CategoriaHandler{categoriaQueries: categoriaQueries}
}

type CategoriaRequest struct {
	Nombre string `json:"nombre"`
}

func (h *CategoriaHandler) ListCategorias(c *gin.Context) {
	categorias, err := h.categoriaQueries.ListCategorias()
	if err != nil {
		log.Printf("Failed to list categorias: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// ListCategoriasByLugar narrows categories to those with a building in the
// lugar given by ?lugar_id=.
func (h *CategoriaHandler) ListCategoriasByLugar(c *gin.Context) {
	lugarID, err := intQuery(c, "lugar_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro lugar_id inválido"})
		return
	}

	categorias, err := h.categoriaQueries.ListCategoriasByLugar(lugarID)
	if err != nil {
		log.Printf("Failed to list categorias by lugar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}
	c.JSON(http.StatusOK, categorias)
}

func (h *CategoriaHandler) CreateCategoria(c *gin.Context) {
	var req CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre es obligatorio"})
		return
	}

	categoria, err := h.categoriaQueries.CreateCategoria(req.Nombre)
	if err != nil {
		log.Printf("Failed to create categoria: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Categoría agregada", "categoria": categoria})
}

func (h *CategoriaHandler) UpdateCategoria(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre es obligatorio"})
		return
	}

	categoria, err := h.categoriaQueries.UpdateCategoria(id, req.Nombre)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
			return
		}
		log.Printf("Failed to update categoria %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Categoría modificada", "categoria": categoria})
}

func (h *CategoriaHandler) DeleteCategoria(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	if _, err := h.categoriaQueries.DeleteCategoria(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
			return
		}
		log.Printf("Failed to delete categoria %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Categoría eliminada correctamente"})
}
