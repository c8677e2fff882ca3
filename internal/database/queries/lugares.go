package queries

import (
	"github.com/campus-project/campus-server/internal/models"
	"github.com/jmoiron/sqlx"
)

type LugarQueries struct {
	db *sqlx.DB
}

func NewLugarQueries(db *sqlx.DB) *LugarQueries {
	return &LugarQueries{db: db}
}

func (q *LugarQueries) ListLugares() ([]models.Lugar, error) {
	lugares := []models.Lugar{}
	err := q.db.Select(&lugares, `SELECT * FROM lugar ORDER BY id`)
	return lugares, err
}

func (q *LugarQueries) CreateLugar(nombre, fechaCreacion string) (*models.Lugar, error) {
	var lugar models.Lugar
	query := `INSERT INTO lugar (nombre, fecha_creacion) VALUES ($1, $2) RETURNING *`
	if err := q.db.Get(&lugar, query, nombre, fechaCreacion); err != nil {
		return nil, err
	}
	return &lugar, nil
}

// UpdateLugar overwrites both fields; sql.ErrNoRows when the id is unknown.
func (q *LugarQueries) UpdateLugar(id int, nombre, fechaCreacion string) (*models.Lugar, error) {
	var lugar models.Lugar
	query := `UPDATE lugar SET nombre = $1, fecha_creacion = $2 WHERE id = $3 RETURNING *`
	if err := q.db.Get(&lugar, query, nombre, fechaCreacion, id); err != nil {
		return nil, err
	}
	return &lugar, nil
}

func (q *LugarQueries) DeleteLugar(id int) (*models.Lugar, error) {
	var lugar models.Lugar
	query := `DELETE FROM lugar WHERE id = $1 RETURNING *`
	if err := q.db.Get(&lugar, query, id); err != nil {
		return nil, err
	}
	return &lugar, nil
}
