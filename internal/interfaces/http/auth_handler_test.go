package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterLogin_Exito(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"nombre": "Ana", "email": "ana@tienda.com", "password": "secreta", "edad": 30, "categoria": "cliente",
	}, "")
	body := decode(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Usuario creado: Ana", body["mensaje"])
	usuario := body["usuario"].(map[string]any)
	assert.NotContains(t, usuario, "password", "el hash nunca sale en la respuesta")
	assert.Equal(t, true, usuario["activo"])

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ana@tienda.com", "password": "secreta"}, "")
	body = decode(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login successful", body["message"])

	claims, err := pkgjwt.Parse(testJWTSecret, body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, usuario["id"], claims.UserID)
	assert.Equal(t, "ana@tienda.com", claims.Email)

	// El token emitido abre las rutas protegidas.
	resp = doRequest(t, app, http.MethodGet, "/api/usuarios", nil, "Bearer "+body["token"].(string))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Email inexistente y contraseña incorrecta producen la misma respuesta.
func TestLogin_SinEnumeracion(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"nombre": "Ana", "email": "ana@tienda.com", "password": "secreta", "categoria": "cliente",
	}, "")
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	r1 := doRequest(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "nadie@tienda.com", "password": "secreta"}, "")
	b1, _ := io.ReadAll(r1.Body)
	r1.Body.Close()

	r2 := doRequest(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ana@tienda.com", "password": "otra"}, "")
	b2, _ := io.ReadAll(r2.Body)
	r2.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, r1.StatusCode)
	assert.Equal(t, r1.StatusCode, r2.StatusCode)
	assert.JSONEq(t, string(b1), string(b2))
}

// Cuenta desactivada con la contraseña correcta → 403.
func TestLogin_CuentaInactiva_Retorna403(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"nombre": "Ana", "email": "ana@tienda.com", "password": "secreta", "categoria": "cliente",
	}, "")
	id := decode(t, resp)["usuario"].(map[string]any)["id"].(string)

	resp = doRequest(t, app, http.MethodDelete, "/api/usuarios/"+id, nil, bearer(t))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ana@tienda.com", "password": "secreta"}, "")
	body := decode(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ACCOUNT_DISABLED", body["code"])

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ana@tienda.com", "password": "otra"}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "con contraseña incorrecta no se revela el estado")
}

func TestLogin_CamposRequeridos(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{"email": "ana@tienda.com"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	app := buildTestApp(t)
	in := map[string]any{"nombre": "Ana", "email": "ana@tienda.com", "password": "secreta", "categoria": "cliente"}
	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", in, "")
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/usuarios", in, bearer(t))
	body := decode(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Ya existe un usuario registrado con este email.", body["mensaje"])
}
