package models

// User maps a row of the usuarios table. Password holds the bcrypt hash and
// Token the last issued JWT; neither is ever serialized to clients.
type User struct {
	ID       int    `json:"id" db:"id"`
	Nombre   string `json:"nombre" db:"nombre"`
	Apellido string `json:"apellido" db:"apellido"`
	Email    string `json:"email" db:"email"`
	Cedula   string `json:"-" db:"cedula"`
	Password string `json:"-" db:"password"`
	Token    string `json:"-" db:"token"`
	Rol      string `json:"rol" db:"rol"`
}

// Roles stored in usuarios.rol.
const (
	RoleAdmin   = "admin"
	RoleStudent = "estudiante"
)

// PublicUser is the projection of a user safe to return to clients.
type PublicUser struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
}

// Public strips the credential fields from a user row.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Rol:      u.Rol,
	}
}
