package http_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crearProducto(t *testing.T, app *fiber.App, nombre string, precio float64, categoria string, stock int) map[string]any {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/productos", map[string]any{
		"nombre": nombre, "precio": precio, "categoria": categoria, "stock": stock,
	}, bearer(t))
	body := decode(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	return body["producto"].(map[string]any)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests stock
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_EscenarioMouse(t *testing.T) {
	app := buildTestApp(t)
	auth := bearer(t)

	p := crearProducto(t, app, "Mouse", 25, "Periféricos", 5)
	assert.Equal(t, float64(5), p["stock"])
	assert.Equal(t, true, p["activo"])
	id := p["id"].(string)

	resp := doRequest(t, app, http.MethodPut, "/api/productos/"+id+"/reducir-stock", map[string]int{"cantidad": 3}, auth)
	body := decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Stock del producto "+id+" reducido en 3", body["mensaje"])
	assert.Equal(t, float64(2), body["producto"].(map[string]any)["stock"])

	resp = doRequest(t, app, http.MethodPut, "/api/productos/"+id+"/reducir-stock", map[string]int{"cantidad": 10}, auth)
	body = decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Stock insuficiente", body["mensaje"])

	resp = doRequest(t, app, http.MethodGet, "/api/productos/"+id, nil, auth)
	body = decode(t, resp)
	assert.Equal(t, float64(2), body["stock"], "un descuento rechazado no modifica el stock")
}

func TestProductos_ReducirStock_CantidadInvalida(t *testing.T) {
	app := buildTestApp(t)
	id := crearProducto(t, app, "Mouse", 25, "Periféricos", 5)["id"].(string)

	for _, in := range []map[string]any{{"cantidad": 0}, {"cantidad": -2}, {}} {
		resp := doRequest(t, app, http.MethodPut, "/api/productos/"+id+"/reducir-stock", in, bearer(t))
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, in)
	}
}

func TestProductos_FijarStockYListadosDeStock(t *testing.T) {
	app := buildTestApp(t)
	auth := bearer(t)
	id := crearProducto(t, app, "Mouse", 25, "Periféricos", 5)["id"].(string)
	crearProducto(t, app, "Teclado", 40, "Periféricos", 1)

	resp := doRequest(t, app, http.MethodPut, "/api/productos/"+id+"/stock", map[string]int{"stock": 0}, auth)
	body := decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Stock del producto "+id+" actualizado a 0", body["mensaje"])

	resp = doRequest(t, app, http.MethodPut, "/api/productos/"+id+"/stock", map[string]int{"stock": -1}, auth)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body = decode(t, doRequest(t, app, http.MethodGet, "/api/productos/agotados", nil, auth))
	assert.Equal(t, []string{"Mouse"}, nombres(t, body, "productos"))

	body = decode(t, doRequest(t, app, http.MethodGet, "/api/productos/con-stock", nil, auth))
	assert.Equal(t, []string{"Teclado"}, nombres(t, body, "productos"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests filtros, búsqueda y categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_FiltrarPorRangoDePrecio(t *testing.T) {
	app := buildTestApp(t)
	crearProducto(t, app, "Lápiz", 5, "Papelería", 10)
	crearProducto(t, app, "Cuaderno", 15, "Papelería", 10)
	crearProducto(t, app, "Mochila", 25, "Accesorios", 10)

	resp := doRequest(t, app, http.MethodGet, "/api/productos/filtrar?precio_min=10&precio_max=20", nil, bearer(t))
	body := decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, []string{"Cuaderno"}, nombres(t, body, "productos"))
	assert.Equal(t, map[string]any{"precio_min": "10", "precio_max": "20"}, body["filtros_aplicados"])
}

func TestProductos_FiltrarCotaNegativa(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/productos/filtrar?precio_min=-1", nil, bearer(t))
	body := decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El precio mínimo no puede ser negativo", body["mensaje"])
}

func TestProductos_OrdenNombreDescendente(t *testing.T) {
	app := buildTestApp(t)
	crearProducto(t, app, "banana", 1, "Frutas", 1)
	crearProducto(t, app, "Álamo", 1, "Plantas", 1)
	crearProducto(t, app, "cereza", 1, "Frutas", 1)

	body := decode(t, doRequest(t, app, http.MethodGet, "/api/productos/filtrar?ordenar=nombre_desc", nil, bearer(t)))
	assert.Equal(t, []string{"cereza", "banana", "Álamo"}, nombres(t, body, "productos"))
}

func TestProductos_BuscarSinAcentos(t *testing.T) {
	app := buildTestApp(t)
	crearProducto(t, app, "Café Molido", 12, "Bebidas", 3)
	crearProducto(t, app, "Té Verde", 8, "Bebidas", 3)

	body := decode(t, doRequest(t, app, http.MethodGet, "/api/productos/buscar?texto=cafe", nil, bearer(t)))
	assert.Equal(t, []string{"Café Molido"}, nombres(t, body, "productos"))
	assert.Equal(t, "cafe", body["texto_buscado"])

	resp := doRequest(t, app, http.MethodGet, "/api/productos/buscar", nil, bearer(t))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductos_Categorias(t *testing.T) {
	app := buildTestApp(t)
	crearProducto(t, app, "Mouse", 25, "Periféricos", 5)
	crearProducto(t, app, "Café", 12, "Bebidas", 3)
	crearProducto(t, app, "Teclado", 40, "Periféricos", 1)

	body := decode(t, doRequest(t, app, http.MethodGet, "/api/productos/categorias", nil, bearer(t)))
	assert.Equal(t, float64(2), body["total"])
	assert.ElementsMatch(t, []any{"Periféricos", "Bebidas"}, body["categorias"])

	body = decode(t, doRequest(t, app, http.MethodGet, "/api/productos/categoria/"+url.PathEscape("Periféricos"), nil, bearer(t)))
	assert.ElementsMatch(t, []string{"Mouse", "Teclado"}, nombres(t, body, "productos"))
	assert.Equal(t, "Periféricos", body["categoria"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CRUD y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_ActualizarYEliminar(t *testing.T) {
	app := buildTestApp(t)
	auth := bearer(t)
	id := crearProducto(t, app, "Mouse", 25, "Periféricos", 5)["id"].(string)

	resp := doRequest(t, app, http.MethodPut, "/api/productos/"+id, map[string]any{"precio": 30.5}, auth)
	body := decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 30.5, body["producto"].(map[string]any)["precio"])

	resp = doRequest(t, app, http.MethodPut, "/api/productos/"+id, map[string]any{"precio": 0}, auth)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/productos/"+id, nil, auth)
	body = decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["producto"].(map[string]any)["activo"])

	resp = doRequest(t, app, http.MethodGet, "/api/productos/"+id, nil, auth)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "un producto inactivo no se puede leer")

	body = decode(t, doRequest(t, app, http.MethodGet, "/api/productos", nil, auth))
	assert.Equal(t, float64(0), body["total"])

	resp = doRequest(t, app, http.MethodDelete, "/api/productos/"+id+"/permanente", nil, auth)
	body = decode(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Producto eliminado permanentemente", body["mensaje"])
}

func TestProductos_CrearInvalido(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/productos",
		map[string]any{"nombre": "Mouse", "precio": -3, "categoria": "Periféricos"}, bearer(t))
	body := decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El precio debe ser mayor a 0", body["mensaje"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests estadísticas y rutas inexistentes
// ──────────────────────────────────────────────────────────────────────────────

func TestEstadisticas(t *testing.T) {
	app := buildTestApp(t)
	crearProducto(t, app, "Mouse", 25, "Periféricos", 5)
	crearProducto(t, app, "Cable", 5, "Periféricos", 0)

	body := decode(t, doRequest(t, app, http.MethodGet, "/api/productos/estadisticas", nil, bearer(t)))
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(15), body["precio_promedio"])
	assert.Equal(t, float64(1), body["productos_agotados"])

	body = decode(t, doRequest(t, app, http.MethodGet, "/api/estadisticas?tipo=productos", nil, bearer(t)))
	assert.Equal(t, "productos", body["tipo"])

	body = decode(t, doRequest(t, app, http.MethodGet, "/api/estadisticas", nil, bearer(t)))
	assert.Equal(t, float64(2), body["productos"])
	assert.Equal(t, float64(0), body["usuarios"])
}

func TestRutaInexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/no-existe", nil, "")
	body := decode(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Ruta no encontrada", body["mensaje"])
}

func TestProductos_IDInexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPut, "/api/productos/no-existe/reducir-stock", map[string]int{"cantidad": 1}, bearer(t))
	body := decode(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado o no está activo", body["mensaje"])
}
