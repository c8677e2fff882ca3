package queries

import (
	"github.com/campus-project/campus-server/internal/models"
	"github.com/jmoiron/sqlx"
)

type CategoriaQueries struct {
	db *sqlx.DB
}

func NewCategoriaQueries(db *sqlx.DB) *CategoriaQueries {
	return &CategoriaQueries{db: db}
}

func (q *CategoriaQueries) ListCategorias() ([]models.Categoria, error) {
	categorias := []models.Categoria{}
	err := q.db.Select(&categorias, `SELECT * FROM categoria ORDER BY id`)
	return categorias, err
}

// ListCategoriasByLugar returns the distinct categories that have at least
// one building in the given lugar. With lugarID 0 the filter is dropped and
// every category that has a building anywhere is returned.
func (q *CategoriaQueries) ListCategoriasByLugar(lugarID int) ([]models.Categoria, error) {
	categorias := []models.Categoria{}
	query := `SELECT DISTINCT c.* FROM categoria c JOIN edificios e ON c.id = e.categoria_id`
	args := []interface{}{}

	if lugarID != 0 {
		query += ` WHERE e.lugar_id = $1`
		args = append(args, lugarID)
	}

	err := q.db.Select(&categorias, query, args...)
	return categorias, err
}

func (q *CategoriaQueries) CreateCategoria(nombre string) (*models.Categoria, error) {
	var categoria models.Categoria
	query := `INSERT INTO categoria (nombre) VALUES ($1) RETURNING *`
	if err := q.db.Get(&categoria, query, nombre); err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (q *CategoriaQueries) UpdateCategoria(id int, nombre string) (*models.Categoria, error) {
	var categoria models.Categoria
	query := `UPDATE categoria SET nombre = $1 WHERE id = $2 RETURNING *`
	if err := q.db.Get(&categoria, query, nombre, id); err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (q *CategoriaQueries) DeleteCategoria(id int) (*models.Categoria, error) {
	var categoria models.Categoria
	query := `DELETE FROM categoria WHERE id = $1 RETURNING *`
	if err := q.db.Get(&categoria, query, id); err != nil {
		return nil, err
	}
	return &categoria, nil
}
