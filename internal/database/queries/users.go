package queries

import (
	"database/sql"

	"github.com/campus-project/campus-server/internal/models"
	"github.com/jmoiron/sqlx"
)

type UserQueries struct {
	db *sqlx.DB
}

func NewUserQueries(db *sqlx.DB) *UserQueries {
	return &UserQueries{db: db}
}

// CreateUser inserts a new user row. Password must already be hashed and
// token holds the JWT minted at registration (empty for admin creation).
func (q *UserQueries) CreateUser(user *models.User) error {
	query := `
		INSERT INTO usuarios (nombre, apellido, email, cedula, password, token, rol)
		VALUES (:nombre, :apellido, :email, :cedula, :password, :token, :rol)
		RETURNING *
	`

	rows, err := q.db.NamedQuery(query, user)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.StructScan(user)
	}
	return sql.ErrNoRows
}

// ListUsers returns every user row.
func (q *UserQueries) ListUsers() ([]models.User, error) {
	users := []models.User{}
	err := q.db.Select(&users, `SELECT * FROM usuarios ORDER BY id`)
	return users, err
}

// GetUserByEmail retrieves a user by email, hash included, for login checks.
func (q *UserQueries) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := q.db.Get(&user, `SELECT * FROM usuarios WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by id.
func (q *UserQueries) GetUserByID(id int) (*models.User, error) {
	var user models.User
	err := q.db.Get(&user, `SELECT * FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserRole reads the stored role for a user. Admin gating calls this on
// every request so role changes apply without re-login.
func (q *UserQueries) GetUserRole(id int) (string, error) {
	var role string
	err := q.db.Get(&role, `SELECT rol FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return "", err
	}
	return role, nil
}

// UpdateUser overwrites the profile fields of a user. When hashedPassword is
// non-empty the stored digest is replaced as well.
func (q *UserQueries) UpdateUser(id int, nombre, apellido, email, cedula, rol, hashedPassword string) (*models.User, error) {
	var user models.User
	var err error
	if hashedPassword != "" {
		query := `
			UPDATE usuarios
			SET nombre = $1, apellido = $2, email = $3, cedula = $4, rol = $5, password = $6
			WHERE id = $7
			RETURNING *
		`
		err = q.db.Get(&user, query, nombre, apellido, email, cedula, rol, hashedPassword, id)
	} else {
		query := `
			UPDATE usuarios
			SET nombre = $1, apellido = $2, email = $3, cedula = $4, rol = $5
			WHERE id = $6
			RETURNING *
		`
		err = q.db.Get(&user, query, nombre, apellido, email, cedula, rol, id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveToken records the last issued token on the user row.
func (q *UserQueries) SaveToken(id int, token string) error {
	_, err := q.db.Exec(`UPDATE usuarios SET token = $1 WHERE id = $2`, token, id)
	return err
}

// DeleteUser removes a user row, returning sql.ErrNoRows when absent.
func (q *UserQueries) DeleteUser(id int) error {
	result, err := q.db.Exec(`DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
