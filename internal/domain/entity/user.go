package entity

import "time"

// User representa un usuario del sistema. Activo=false marca el borrado lógico.
type User struct {
	ID                 string
	Email              string
	PasswordHash       string // bcrypt hash, nunca se devuelve al cliente
	Nombre             string
	Edad               int
	Categoria          string
	Descripcion        string
	Activo             bool
	Version            int64
	FechaCreacion      time.Time
	FechaActualizacion time.Time
	FechaEliminacion   *time.Time
}
