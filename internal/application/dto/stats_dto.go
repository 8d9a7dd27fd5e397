package dto

// GlobalStatsResponse resumen cuando no se indica ?tipo=.
type GlobalStatsResponse struct {
	Usuarios  int    `json:"usuarios"`
	Productos int    `json:"productos"`
	Mensaje   string `json:"mensaje"`
}
