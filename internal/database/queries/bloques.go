package queries

import (
	"fmt"

	"github.com/campus-project/campus-server/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type BloqueQueries struct {
	db *sqlx.DB
}

func NewBloqueQueries(db *sqlx.DB) *BloqueQueries {
	return &BloqueQueries{db: db}
}

// BloqueFilter narrows the enriched block listing. Zero values are omitted
// from the predicate.
type BloqueFilter struct {
	EdificioID  int
	LugarID     int
	CategoriaID int
}

// ListBloques returns blocks joined with their building name. The inner
// join drops blocks whose edificios_id no longer resolves.
func (q *BloqueQueries) ListBloques(filter BloqueFilter) ([]models.BloqueDetalle, error) {
	bloques := []models.BloqueDetalle{}
	query := `
		SELECT bloques.*, edificios.nombre AS nombre_edificio
		FROM bloques
		JOIN edificios ON bloques.edificios_id = edificios.id
	`
	args := []interface{}{}
	conditions := []string{}

	if filter.EdificioID != 0 {
		args = append(args, filter.EdificioID)
		conditions = append(conditions, fmt.Sprintf("bloques.edificios_id = $%d", len(args)))
	}
	if filter.LugarID != 0 {
		args = append(args, filter.LugarID)
		conditions = append(conditions, fmt.Sprintf("edificios.lugar_id = $%d", len(args)))
	}
	if filter.CategoriaID != 0 {
		args = append(args, filter.CategoriaID)
		conditions = append(conditions, fmt.Sprintf("edificios.categoria_id = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY bloques.id"

	err := q.db.Select(&bloques, query, args...)
	return bloques, err
}

// GetBloque returns the enriched detail view of one block.
func (q *BloqueQueries) GetBloque(id int) (*models.BloqueDetalle, error) {
	var bloque models.BloqueDetalle
	query := `
		SELECT bloques.*, edificios.nombre AS nombre_edificio
		FROM bloques
		JOIN edificios ON bloques.edificios_id = edificios.id
		WHERE bloques.id = $1
	`
	if err := q.db.Get(&bloque, query, id); err != nil {
		return nil, err
	}
	return &bloque, nil
}

// GetLaboratorios returns the lab list of a block. A missing block yields
// sql.ErrNoRows; the handler maps that to an empty list.
func (q *BloqueQueries) GetLaboratorios(bloqueID int) ([]string, error) {
	var labs pq.StringArray
	if err := q.db.Get(&labs, `SELECT laboratorios FROM bloques WHERE id = $1`, bloqueID); err != nil {
		return nil, err
	}
	return []string(labs), nil
}

func (q *BloqueQueries) CreateBloque(bloque *models.Bloque) error {
	query := `
		INSERT INTO bloques (nombre, descripcion, latitud, longitud, edificios_id, laboratorios)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	`
	return q.db.Get(bloque, query,
		bloque.Nombre, bloque.Descripcion, bloque.Latitud, bloque.Longitud,
		bloque.EdificiosID, bloque.Laboratorios)
}

func (q *BloqueQueries) UpdateBloque(id int, bloque *models.Bloque) error {
	query := `
		UPDATE bloques
		SET nombre = $1, descripcion = $2, latitud = $3, longitud = $4, edificios_id = $5, laboratorios = $6
		WHERE id = $7
		RETURNING *
	`
	return q.db.Get(bloque, query,
		bloque.Nombre, bloque.Descripcion, bloque.Latitud, bloque.Longitud,
		bloque.EdificiosID, bloque.Laboratorios, id)
}

func (q *BloqueQueries) DeleteBloque(id int) (*models.Bloque, error) {
	var bloque models.Bloque
	query := `DELETE FROM bloques WHERE id = $1 RETURNING *`
	if err := q.db.Get(&bloque, query, id); err != nil {
		return nil, err
	}
	return &bloque, nil
}
