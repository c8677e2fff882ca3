package models

// Wifi holds the campus network credentials shown to authenticated users.
// By convention a single row exists; reads return the first one.
type Wifi struct {
	ID       int    `json:"id" db:"id"`
	Nombre   string `json:"nombre" db:"nombre"`
	Password string `json:"password" db:"password"`
}
