package models

import "github.com/lib/pq"

// Evaluacion is a scheduled evaluation tied to a full location chain
// (lugar, categoria, edificio, bloque) plus the labs it occupies.
type Evaluacion struct {
	ID           int            `json:"id" db:"id"`
	Nombre       string         `json:"nombre" db:"nombre"`
	LugarID      int            `json:"lugar_id" db:"lugar_id"`
	CategoriaID  int            `json:"categoria_id" db:"categoria_id"`
	EdificioID   int            `json:"edificio_id" db:"edificio_id"`
	BloqueID     int            `json:"bloque_id" db:"bloque_id"`
	Laboratorios pq.StringArray `json:"laboratorios" db:"laboratorios"`
	FechaInicio  string         `json:"fecha_inicio" db:"fecha_inicio"`
	FechaFin     string         `json:"fecha_fin" db:"fecha_fin"`
	Horarios     string         `json:"horarios" db:"horarios"`
}

// EvaluacionDetalle joins an evaluacion with the names of its four
// references. Rows with any dangling reference drop out of the inner joins
// and are invisible to the listing endpoint.
type EvaluacionDetalle struct {
	Evaluacion
	LugarNombre     string `json:"lugar_nombre" db:"lugar_nombre"`
	CategoriaNombre string `json:"categoria_nombre" db:"categoria_nombre"`
	EdificioNombre  string `json:"edificio_nombre" db:"edificio_nombre"`
	BloqueNombre    string `json:"bloque_nombre" db:"bloque_nombre"`
}
