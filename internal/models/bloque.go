package models

import "github.com/lib/pq"

// Bloque is a block inside a building, with map coordinates and the ordered
// list of laboratory identifiers it hosts.
type Bloque struct {
	ID           int            `json:"id" db:"id"`
	Nombre       string         `json:"nombre" db:"nombre"`
	Descripcion  string         `json:"descripcion" db:"descripcion"`
	Latitud      *float64       `json:"latitud" db:"latitud"`
	Longitud     *float64       `json:"longitud" db:"longitud"`
	EdificiosID  int            `json:"edificios_id" db:"edificios_id"`
	Laboratorios pq.StringArray `json:"laboratorios" db:"laboratorios"`
}

// BloqueDetalle is the enriched read view of a bloque joined with its
// building name. Blocks whose edificios_id dangles are excluded by the join.
type BloqueDetalle struct {
	Bloque
	NombreEdificio string `json:"nombre_edificio" db:"nombre_edificio"`
}
