package queries

import (
	"github.com/campus-project/campus-server/internal/models"
	"github.com/jmoiron/sqlx"
)

type EvaluacionQueries struct {
	db *sqlx.DB
}

func NewEvaluacionQueries(db *sqlx.DB) *EvaluacionQueries {
	return &EvaluacionQueries{db: db}
}

// ListEvaluaciones returns the enriched view joined with the names of all
// four referenced rows. Evaluations with any dangling reference are
// filtered out by the inner joins.
func (q *EvaluacionQueries) ListEvaluaciones() ([]models.EvaluacionDetalle, error) {
	evaluaciones := []models.EvaluacionDetalle{}
	query := `
		SELECT
			e.*,
			l.nombre AS lugar_nombre,
			c.nombre AS categoria_nombre,
			ed.nombre AS edificio_nombre,
			b.nombre AS bloque_nombre
		FROM evaluaciones e
		JOIN lugar l ON e.lugar_id = l.id
		JOIN categoria c ON e.categoria_id = c.id
		JOIN edificios ed ON e.edificio_id = ed.id
		JOIN bloques b ON e.bloque_id = b.id
		ORDER BY e.id
	`
	err := q.db.Select(&evaluaciones, query)
	return evaluaciones, err
}

func (q *EvaluacionQueries) CreateEvaluacion(ev *models.Evaluacion) error {
	query := `
		INSERT INTO evaluaciones (
			nombre, lugar_id, categoria_id, edificio_id, bloque_id,
			laboratorios, fecha_inicio, fecha_fin, horarios
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *
	`
	return q.db.Get(ev, query,
		ev.Nombre, ev.LugarID, ev.CategoriaID, ev.EdificioID, ev.BloqueID,
		ev.Laboratorios, ev.FechaInicio, ev.FechaFin, ev.Horarios)
}

func (q *EvaluacionQueries) UpdateEvaluacion(id int, ev *models.Evaluacion) error {
	query := `
		UPDATE evaluaciones SET
			nombre = $1, lugar_id = $2, categoria_id = $3, edificio_id = $4, bloque_id = $5,
			laboratorios = $6, fecha_inicio = $7, fecha_fin = $8, horarios = $9
		WHERE id = $10
		RETURNING *
	`
	return q.db.Get(ev, query,
		ev.Nombre, ev.LugarID, ev.CategoriaID, ev.EdificioID, ev.BloqueID,
		ev.Laboratorios, ev.FechaInicio, ev.FechaFin, ev.Horarios, id)
}

func (q *EvaluacionQueries) DeleteEvaluacion(id int) (*models.Evaluacion, error) {
	var ev models.Evaluacion
	query := `DELETE FROM evaluaciones WHERE id = $1 RETURNING *`
	if err := q.db.Get(&ev, query, id); err != nil {
		return nil, err
	}
	return &ev, nil
}
