package queries

import (
	"github.com/campus-project/campus-server/internal/models"
	"github.com/jmoiron/sqlx"
)

type WifiQueries struct {
	db *sqlx.DB
}

func NewWifiQueries(db *sqlx.DB) *WifiQueries {
	return &WifiQueries{db: db}
}

// GetWifi returns the first stored credential row. Single-record by
// convention, not enforced by a constraint.
func (q *WifiQueries) GetWifi() (*models.Wifi, error) {
	var wifi models.Wifi
	if err := q.db.Get(&wifi, `SELECT * FROM wifi ORDER BY id LIMIT 1`); err != nil {
		return nil, err
	}
	return &wifi, nil
}

func (q *WifiQueries) CreateWifi(nombre, password string) (*models.Wifi, error) {
	var wifi models.Wifi
	query := `INSERT INTO wifi (nombre, password) VALUES ($1, $2) RETURNING *`
	if err := q.db.Get(&wifi, query, nombre, password); err != nil {
		return nil, err
	}
	return &wifi, nil
}

func (q *WifiQueries) UpdateWifi(id int, nombre, password string) (*models.Wifi, error) {
	var wifi models.Wifi
	query := `UPDATE wifi SET nombre = $1, password = $2 WHERE id = $3 RETURNING *`
	if err := q.db.Get(&wifi, query, nombre, password, id); err != nil {
		return nil, err
	}
	return &wifi, nil
}

func (q *WifiQueries) DeleteWifi(id int) (*models.Wifi, error) {
	var wifi models.Wifi
	query := `DELETE FROM wifi WHERE id = $1 RETURNING *`
	if err := q.db.Get(&wifi, query, id); err != nil {
		return nil, err
	}
	return &wifi, nil
}
