package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crearUsuario(t *testing.T, app *fiber.App, nombre, email string, edad int, categoria string) map[string]any {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/usuarios", map[string]any{
		"nombre": nombre, "email": email, "password": "secreta", "edad": edad, "categoria": categoria,
	}, bearer(t))
	body := decode(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	return body["usuario"].(map[string]any)
}

func TestUsuarios_CRUD(t *testing.T) {
	app := buildTestApp(t)
	auth := bearer(t)
	id := crearUsuario(t, app, "Ana", "ana@tienda.com", 30, "cliente")["id"].(string)

	resp := doRequest(t, app, http.MethodPut, "/api/usuarios/"+id, map[string]any{"edad": 31}, auth)
	body := decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Usuario "+id+" actualizado", body["mensaje"])
	assert.Equal(t, float64(31), body["usuario"].(map[string]any)["edad"])

	resp = doRequest(t, app, http.MethodPut, "/api/usuarios/"+id, map[string]any{}, auth)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "actualización sin campos")

	resp = doRequest(t, app, http.MethodDelete, "/api/usuarios/"+id, nil, auth)
	body = decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Usuario eliminado (soft delete)", body["mensaje"])

	resp = doRequest(t, app, http.MethodGet, "/api/usuarios/"+id, nil, auth)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/usuarios/"+id, nil, auth)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "un usuario inactivo no se vuelve a eliminar")
}

func TestUsuarios_FiltrarYBuscar(t *testing.T) {
	app := buildTestApp(t)
	crearUsuario(t, app, "Ana", "ana@tienda.com", 30, "cliente")
	crearUsuario(t, app, "Bruno", "bruno@tienda.com", 45, "admin")
	crearUsuario(t, app, "Carla", "carla@tienda.com", 20, "cliente")

	body := decode(t, doRequest(t, app, http.MethodGet, "/api/usuarios/filtrar?categoria=cliente&ordenar=edad_desc", nil, bearer(t)))
	assert.Equal(t, []string{"Ana", "Carla"}, nombres(t, body, "usuarios"))

	resp := doRequest(t, app, http.MethodGet, "/api/usuarios/filtrar?edad_min=40&edad_max=30", nil, bearer(t))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body = decode(t, doRequest(t, app, http.MethodGet, "/api/usuarios/buscar?texto=BRU", nil, bearer(t)))
	assert.Equal(t, []string{"Bruno"}, nombres(t, body, "usuarios"))

	body = decode(t, doRequest(t, app, http.MethodGet, "/api/usuarios/categoria/cliente", nil, bearer(t)))
	assert.ElementsMatch(t, []string{"Ana", "Carla"}, nombres(t, body, "usuarios"))

	body = decode(t, doRequest(t, app, http.MethodGet, "/api/usuarios/estadisticas", nil, bearer(t)))
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, 31.67, body["edad_promedio"])
}

func TestMetrics_ExponeContadores(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/health", nil, "")
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/metrics", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `http_requests_total{method="GET",path="/health",status="200"} 1`)
}
