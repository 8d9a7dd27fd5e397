package filter

import "github.com/jhoicas/tienda-api/internal/domain/docstore"

// Colecciones del almacén.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
)

// Campos propios de cada entidad.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldEdad     = "edad"
	FieldPrecio   = "precio"
	FieldStock    = "stock"
)

// Órdenes en memoria comunes: el almacén no ofrece nombre descendente ni fecha
// ascendente en los índices por defecto.
var fallbackSorts = []SortKey{
	{Key: "nombre_desc", Field: FieldNombre, Dir: docstore.Desc},
	{Key: "fecha_asc", Field: FieldFechaCreacion, Dir: docstore.Asc},
}

// Products filtros de /api/productos/filtrar.
var Products = MustSpec(CollectionProducts,
	[]Field{
		{Param: "categoria", Target: FieldCategoria, Kind: Equality, Native: true},
		{Param: "stock_min", Target: FieldStock, Kind: Range, Op: docstore.OpGte, Number: Int, Native: true},
		{Param: "stock_max", Target: FieldStock, Kind: Range, Op: docstore.OpLte, Number: Int, Native: true},
		{Param: "precio_min", Target: FieldPrecio, Kind: Range, Op: docstore.OpGte, Number: Float, Native: true},
		{Param: "precio_max", Target: FieldPrecio, Kind: Range, Op: docstore.OpLte, Number: Float, Native: true},
		{Param: "nombre", Target: FieldNombre, Kind: Text},
	},
	append([]SortKey{
		{Key: "precio_asc", Field: FieldPrecio, Dir: docstore.Asc, Native: true},
		{Key: "precio_desc", Field: FieldPrecio, Dir: docstore.Desc, Native: true},
		{Key: "nombre", Field: FieldNombre, Dir: docstore.Asc, Native: true},
		{Key: "fecha_desc", Field: FieldFechaCreacion, Dir: docstore.Desc, Native: true},
	}, fallbackSorts...),
)

// Users filtros de /api/usuarios/filtrar.
var Users = MustSpec(CollectionUsers,
	[]Field{
		{Param: "categoria", Target: FieldCategoria, Kind: Equality, Native: true},
		{Param: "edad_min", Target: FieldEdad, Kind: Range, Op: docstore.OpGte, Number: Float, Native: true},
		{Param: "edad_max", Target: FieldEdad, Kind: Range, Op: docstore.OpLte, Number: Float, Native: true},
		{Param: "nombre", Target: FieldNombre, Kind: Text},
	},
	append([]SortKey{
		{Key: "edad_asc", Field: FieldEdad, Dir: docstore.Asc, Native: true},
		{Key: "edad_desc", Field: FieldEdad, Dir: docstore.Desc, Native: true},
		{Key: "nombre", Field: FieldNombre, Dir: docstore.Asc, Native: true},
		{Key: "fecha_desc", Field: FieldFechaCreacion, Dir: docstore.Desc, Native: true},
	}, fallbackSorts...),
)
