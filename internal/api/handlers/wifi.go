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

type WifiHandler struct {
	wifiQueries *queries.WifiQueries
}

func NewWifiHandler(wifiQueries *queries.WifiQueries) *WifiHandler {
	return &WifiHandler{wifiQueries: wifiQueries}
}

type WifiRequest struct {
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
}

// GetWifi returns the first stored credential regardless of how many exist.
func (h *WifiHandler) GetWifi(c *gin.Context) {
	wifi, err := h.wifiQueries.GetWifi()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No hay credenciales guardadas"})
			return
		}
		log.Printf("Failed to get wifi credentials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}
	c.JSON(http.StatusOK, wifi)
}

func (h *WifiHandler) CreateWifi(c *gin.Context) {
	var req WifiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre y contraseña son obligatorios"})
		return
	}

	wifi, err := h.wifiQueries.CreateWifi(req.Nombre, req.Password)
	if err != nil {
		log.Printf("Failed to create wifi credentials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusCreated, wifi)
}

func (h *WifiHandler) UpdateWifi(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req WifiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido"})
		return
	}

	if req.Nombre == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre y contraseña son obligatorios"})
		return
	}

	wifi, err := h.wifiQueries.UpdateWifi(id, req.Nombre, req.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Registro WiFi no encontrado"})
			return
		}
		log.Printf("Failed to update wifi %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, wifi)
}

func (h *WifiHandler) DeleteWifi(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	if _, err := h.wifiQueries.DeleteWifi(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Registro WiFi no encontrado"})
			return
		}
		log.Printf("Failed to delete wifi %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Registro WiFi eliminado correctamente"})
}
