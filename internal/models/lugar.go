package models

// Lugar is the root of the location hierarchy (a campus or site).
type Lugar struct {
	ID            int    `json:"id" db:"id"`
	Nombre        string `json:"nombre" db:"nombre"`
	FechaCreacion string `json:"fecha_creacion" db:"fecha_creacion"`
}

// Categoria classifies buildings (faculty, services, sports, ...).
type Categoria struct {
	ID     int    `json:"id" db:"id"`
	Nombre string `json:"nombre" db:"nombre"`
}

// Edificio is a building inside a lugar, tagged with a categoria.
type Edificio struct {
	ID          int    `json:"id" db:"id"`
	Nombre      string `json:"nombre" db:"nombre"`
	LugarID     int    `json:"lugar_id" db:"lugar_id"`
	CategoriaID int    `json:"categoria_id" db:"categoria_id"`
}
