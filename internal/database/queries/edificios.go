package queries

import (
	"fmt"

	"github.com/campus-project/campus-server/internal/models"
	"github.com/jmoiron/sqlx"
)

type EdificioQueries struct {
	db *sqlx.DB
}

func NewEdificioQueries(db *sqlx.DB) *EdificioQueries {
	return &EdificioQueries{db: db}
}

// EdificioFilter narrows the listing by foreign-key equality. Zero values
// are omitted from the predicate entirely.
type EdificioFilter struct {
	CategoriaID int
	LugarID     int
}

func (q *EdificioQueries) ListEdificios(filter EdificioFilter) ([]models.Edificio, error) {
	edificios := []models.Edificio{}
	query := `SELECT * FROM edificios`
	args := []interface{}{}
	conditions := []string{}

	if filter.CategoriaID != 0 {
		args = append(args, filter.CategoriaID)
		conditions = append(conditions, fmt.Sprintf("categoria_id = $%d", len(args)))
	}
	if filter.LugarID != 0 {
		args = append(args, filter.LugarID)
		conditions = append(conditions, fmt.Sprintf("lugar_id = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY id"

	err := q.db.Select(&edificios, query, args...)
	return edificios, err
}

// CreateEdificio inserts a building; dangling lugar_id/categoria_id fail at
// the store via the foreign-key constraints.
func (q *EdificioQueries) CreateEdificio(nombre string, lugarID, categoriaID int) (*models.Edificio, error) {
	var edificio models.Edificio
	query := `INSERT INTO edificios (nombre, lugar_id, categoria_id) VALUES ($1, $2, $3) RETURNING *`
	if err := q.db.Get(&edificio, query, nombre, lugarID, categoriaID); err != nil {
		return nil, err
	}
	return &edificio, nil
}

func (q *EdificioQueries) UpdateEdificio(id int, nombre string, lugarID, categoriaID int) (*models.Edificio, error) {
	var edificio models.Edificio
	query := `UPDATE edificios SET nombre = $1, lugar_id = $2, categoria_id = $3 WHERE id = $4 RETURNING *`
	if err := q.db.Get(&edificio, query, nombre, lugarID, categoriaID, id); err != nil {
		return nil, err
	}
	return &edificio, nil
}

func (q *EdificioQueries) DeleteEdificio(id int) (*models.Edificio, error) {
	var edificio models.Edificio
	query := `DELETE FROM edificios WHERE id = $1 RETURNING *`
	if err := q.db.Get(&edificio, query, id); err != nil {
		return nil, err
	}
	return &edificio, nil
}
