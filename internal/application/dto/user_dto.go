package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Edad        *int   `json:"edad" validate:"omitempty,gte=0"`
	Categoria   string `json:"categoria" validate:"required,max=100"`
	Descripcion string `json:"descripcion"`
}

// UpdateUserRequest actualización parcial; los campos ausentes no se modifican.
type UpdateUserRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,max=200"`
	Edad        *int    `json:"edad" validate:"omitempty,gte=0"`
	Categoria   *string `json:"categoria" validate:"omitempty,max=100"`
	Descripcion *string `json:"descripcion"`
	Password    *string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Nombre             string     `json:"nombre"`
	Edad               int        `json:"edad"`
	Categoria          string     `json:"categoria"`
	Descripcion        string     `json:"descripcion"`
	Activo             bool       `json:"activo"`
	FechaCreacion      time.Time  `json:"fechaCreacion"`
	FechaActualizacion time.Time  `json:"fechaActualizacion"`
	FechaEliminacion   *time.Time `json:"fechaEliminacion,omitempty"`
}

// UserListResponse listado de usuarios; los campos opcionales describen la consulta.
type UserListResponse struct {
	Total            int               `json:"total"`
	FiltrosAplicados map[string]string `json:"filtros_aplicados,omitempty"`
	TextoBuscado     string            `json:"texto_buscado,omitempty"`
	Categoria        string            `json:"categoria,omitempty"`
	Usuarios         []UserResponse    `json:"usuarios"`
}

// UserMutationResponse resultado de crear, actualizar o eliminar un usuario.
type UserMutationResponse struct {
	Mensaje string       `json:"mensaje"`
	Usuario UserResponse `json:"usuario"`
}

// UserStatsResponse estadísticas de usuarios activos.
type UserStatsResponse struct {
	Tipo         string         `json:"tipo"`
	Total        int            `json:"total"`
	EdadPromedio float64        `json:"edad_promedio"`
	PorCategoria map[string]int `json:"por_categoria"`
}
