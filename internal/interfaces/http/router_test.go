package http_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lotes-api/internal/application/dto"
	apphttp "github.com/jhoicas/inventario-lotes-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación y autorización
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_Publico(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/health", "/api/health"} {
		resp := env.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		out := decode[dto.HealthResponse](t, resp)
		assert.Equal(t, "Backend funcionando correctamente", out.Status)
		assert.False(t, out.Timestamp.IsZero())
	}
}

func TestAuthMiddleware_SinToken(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/productos", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Token de autorización requerido", out.Error)
	assert.Equal(t, apphttp.CodeMissingToken, out.Code)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/productos", "Bearer no-es-un-jwt", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Token inválido o expirado", out.Error)
	assert.Equal(t, apphttp.CodeInvalidToken, out.Code)
}

func TestRequireAdmin_UsuarioNormalRecibe403(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/categorias", env.userToken, map[string]any{"nombre": "Insumos"})

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Se requieren permisos de administrador", out.Error)
}

func TestAuth_VerifyYProfile(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/auth/verify", env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decode[dto.VerifyResponse](t, resp)
	assert.Equal(t, "bodega", v.User.Username)
	assert.Equal(t, "bodega@example.com", v.User.Email)
	assert.Equal(t, "usuario", v.User.Rol)

	resp = env.do(t, http.MethodGet, "/api/auth/profile", env.adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p := decode[dto.ProfileResponse](t, resp)
	assert.Equal(t, "admin", p.Usuario.Username)
	assert.Equal(t, "admin", p.Usuario.Rol)
}

func TestAuthToken_DeshabilitadoPorDefecto(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/auth/token", "", map[string]any{"email": "admin@example.com", "password": testPassword})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func withToken(l apphttp.RateLimiter, perMinute int) envOption {
	return func(d *apphttp.RouterDeps) {
		d.TokenEndpointEnabled = true
		d.TokenRequestsPerMinute = perMinute
		d.Limiter = l
	}
}

func TestAuthToken_EmiteSesionYLimitaPorIP(t *testing.T) {
	env := newTestEnv(t, withToken(&fakeLimiter{n: 2}, 2))
	creds := map[string]any{"email": "admin@example.com", "password": testPassword}

	resp := env.do(t, http.MethodPost, "/api/auth/token", "", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tok := decode[dto.TokenResponse](t, resp)
	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, "admin@example.com", tok.User.Email)

	// El token emitido sirve para las rutas protegidas.
	resp = env.do(t, http.MethodGet, "/api/auth/profile", "Bearer "+tok.AccessToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/token", "", map[string]any{"email": "admin@example.com", "password": "incorrecta"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid login credentials", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodPost, "/api/auth/token", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
	assert.Equal(t, apphttp.CodeRateLimited, decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuthToken_LimitadorCaidoNoBloquea(t *testing.T) {
	env := newTestEnv(t, withToken(&fakeLimiter{err: errors.New("redis caído")}, 1))
	creds := map[string]any{"email": "admin@example.com", "password": testPassword}

	for i := 0; i < 3; i++ {
		resp := env.do(t, http.MethodPost, "/api/auth/token", "", creds)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorias_CrudAdmin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/categorias", env.adminToken, map[string]any{"nombre": "  Insumos  ", "descripcion": "Material"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.CategoryEnvelope](t, resp)
	assert.Equal(t, "Insumos", created.Categoria.Nombre)
	assert.True(t, created.Categoria.Activo)

	resp = env.do(t, http.MethodPost, "/api/categorias", env.adminToken, map[string]any{"nombre": "Insumos"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Ya existe una categoría con este nombre", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodGet, "/api/categorias", env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.CategoryListResponse](t, resp).Categorias, 2)

	path := fmt.Sprintf("/api/categorias/%d", created.Categoria.IDCategoria)
	resp = env.do(t, http.MethodDelete, path, env.adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	msg := decode[dto.MessageResponse](t, resp)
	assert.True(t, msg.Success)
	assert.Equal(t, "Categoría eliminada correctamente", msg.Message)

	resp = env.do(t, http.MethodGet, path, env.userToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategorias_ValidacionDeFormato(t *testing.T) {
	env := newTestEnv(t)
	long := make([]byte, 121)
	for i := range long {
		long[i] = 'a'
	}
	resp := env.do(t, http.MethodPost, "/api/categorias", env.adminToken, map[string]any{"nombre": string(long)})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El campo nombre debe tener como máximo 120 caracteres", decode[dto.ErrorResponse](t, resp).Error)
}

func TestProductos_NoEncontradoEIDInvalido(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/productos/999", env.userToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodGet, "/api/productos/abc", env.userToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ID inválido", decode[dto.ErrorResponse](t, resp).Error)
}

// createProductAndLot registra un producto con un lote por HTTP y devuelve sus IDs.
func (e *testEnv) createProductAndLot(t *testing.T, code, lot, expiry string, qty int) (int64, int64) {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/productos", e.userToken, map[string]any{
		"codigo": code, "nombre_articulo": "Producto " + code, "categoria_id": e.category,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	p := decode[dto.ProductEnvelope](t, resp)

	resp = e.do(t, http.MethodPost, "/api/lotes", e.userToken, map[string]any{
		"id_producto": p.Producto.IDProducto, "numero_lote": lot, "fecha_vencimiento": expiry, "cantidad_inicial": qty,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	l := decode[dto.LotEnvelope](t, resp)
	return p.Producto.IDProducto, l.Lote.IDLote
}

func TestProductos_VistaDeStockYExport(t *testing.T) {
	env := newTestEnv(t)
	env.createProductAndLot(t, "P-1", "L-1", "2024-07-01", 40)

	resp := env.do(t, http.MethodGet, "/api/productos/inventario/stock", env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := decode[dto.StockViewResponse](t, resp).Productos
	require.Len(t, rows, 1)
	assert.Equal(t, "L-1", rows[0].Lote)
	assert.Equal(t, 16, rows[0].DiasHastaVencimiento)
	assert.Equal(t, "por_vencer", rows[0].EstadoVencimiento)
	assert.Equal(t, "unidades", rows[0].UnidadMedida)

	resp = env.do(t, http.MethodGet, "/api/productos/inventario/stock/export", env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario-stock.xlsx")
}

func TestProductos_NoSeBorraConLotes(t *testing.T) {
	env := newTestEnv(t)
	pid, _ := env.createProductAndLot(t, "P-1", "L-1", "2025-01-01", 10)

	resp := env.do(t, http.MethodDelete, fmt.Sprintf("/api/productos/%d", pid), env.userToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No se puede eliminar el producto porque tiene lotes asociados", decode[dto.ErrorResponse](t, resp).Error)
}

func TestLotes_Validaciones(t *testing.T) {
	env := newTestEnv(t)
	pid, _ := env.createProductAndLot(t, "P-1", "L-1", "2025-01-01", 10)

	resp := env.do(t, http.MethodPost, "/api/lotes", env.userToken, map[string]any{
		"id_producto": pid, "numero_lote": "L-2", "fecha_vencimiento": "2024-06-15", "cantidad_inicial": 5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "La fecha de vencimiento debe ser futura", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodPost, "/api/lotes", env.userToken, map[string]any{
		"id_producto": pid, "numero_lote": "L-1", "fecha_vencimiento": "2025-01-01", "cantidad_inicial": 5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El número de lote ya existe", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/lotes/producto/%d", pid), env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.LotListResponse](t, resp).Lotes, 1)
}

func TestLotes_AlertasDeVencimiento(t *testing.T) {
	env := newTestEnv(t)
	env.createProductAndLot(t, "P-1", "L-CERCA", "2024-07-10", 10)
	env.createProductAndLot(t, "P-2", "L-LEJOS", "2024-09-01", 10)

	resp := env.do(t, http.MethodGet, "/api/lotes/alertas/vencimientos", env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ExpiringLotsResponse](t, resp)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "L-CERCA", out.Lotes[0].NumeroLote)

	resp = env.do(t, http.MethodGet, "/api/lotes/alertas/vencimientos?dias=90", env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[dto.ExpiringLotsResponse](t, resp).Total)

	resp = env.do(t, http.MethodGet, "/api/lotes/alertas/vencimientos?dias=muchos", env.userToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestEntradas_RegistrarSugerirYActa(t *testing.T) {
	env := newTestEnv(t)
	pid, _ := env.createProductAndLot(t, "P-1", "L-1", "2025-01-01", 10)

	resp := env.do(t, http.MethodGet, "/api/entradas/ultimo-numero/sugerencia", env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ACT-2024-001", decode[dto.ActaSuggestionResponse](t, resp).Sugerencia)

	resp = env.do(t, http.MethodPost, "/api/entradas", env.userToken, map[string]any{
		"numero_acta":   "ACT-2024-001",
		"fecha_entrada": "2024-06-15",
		"proveedor":     "Droguería Central",
		"detalles": []map[string]any{
			{"tipo": "existente", "id_producto": pid, "numero_lote": "E-1", "fecha_vencimiento": "2025-03-01", "cantidad": 25},
			{"tipo": "nuevo", "codigo": "P-NEW", "nombre_articulo": "Gasas", "categoria_id": env.category, "numero_lote": "E-2", "fecha_vencimiento": "2025-03-01", "cantidad": 5},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.EntradaCreatedResponse](t, resp)
	assert.Equal(t, "Entrada registrada exitosamente", created.Message)
	assert.Len(t, created.Entrada.DetalleEntradas, 2)

	resp = env.do(t, http.MethodGet, "/api/entradas/ultimo-numero/sugerencia", env.userToken, nil)
	assert.Equal(t, "ACT-2024-002", decode[dto.ActaSuggestionResponse](t, resp).Sugerencia)

	resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/entradas/%d/acta", created.Entrada.IDEntrada), env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body[:4]))

	resp = env.do(t, http.MethodPost, "/api/entradas", env.userToken, map[string]any{
		"numero_acta": "ACT-2024-001", "fecha_entrada": "2024-06-15", "proveedor": "Otro",
		"detalles": []map[string]any{{"id_producto": pid, "numero_lote": "E-3", "fecha_vencimiento": "2025-03-01", "cantidad": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El número de acta ya existe", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodDelete, fmt.Sprintf("/api/entradas/%d", created.Entrada.IDEntrada), env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Entrada eliminada correctamente", decode[dto.MessageResponse](t, resp).Message)
}

func TestEntradas_TipoDeDetalleInvalido(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/entradas", env.userToken, map[string]any{
		"numero_acta": "ACT-2024-001", "fecha_entrada": "2024-06-15", "proveedor": "X",
		"detalles": []map[string]any{{"tipo": "otro", "numero_lote": "E-1", "fecha_vencimiento": "2025-03-01", "cantidad": 1}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "El campo detalles[0].tipo debe ser uno de: existente, nuevo", decode[dto.ErrorResponse](t, resp).Error)
	assert.Equal(t, 0, env.countEntradas(t))
}

func (e *testEnv) countEntradas(t *testing.T) int {
	t.Helper()
	resp := e.do(t, http.MethodGet, "/api/entradas", e.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return len(decode[dto.EntradaListResponse](t, resp).Entradas)
}

func TestSalidas_StockInsuficienteNoEscribe(t *testing.T) {
	env := newTestEnv(t)
	_, lid := env.createProductAndLot(t, "P-1", "L-1", "2025-01-01", 5)

	resp := env.do(t, http.MethodPost, "/api/salidas", env.userToken, map[string]any{
		"numero_acta_salida": "SAL-2024-001", "fecha_salida": "2024-06-15",
		"beneficiario": "Centro de Salud", "lugar_salida": "Bodega",
		"detalles": []map[string]any{{"id_lote": lid, "cantidad": 6}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, resp).Error, "Stock insuficiente en lote L-1")

	resp = env.do(t, http.MethodGet, "/api/salidas", env.userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[dto.SalidaListResponse](t, resp).Salidas)
}

func TestSalidas_RegistrarYActa(t *testing.T) {
	env := newTestEnv(t)
	_, lid := env.createProductAndLot(t, "P-1", "L-1", "2025-01-01", 5)

	resp := env.do(t, http.MethodPost, "/api/salidas", env.userToken, map[string]any{
		"numero_acta_salida": "SAL-2024-001", "fecha_salida": "2024-06-15",
		"beneficiario": "Centro de Salud", "lugar_salida": "Bodega",
		"detalles": []map[string]any{{"id_lote": lid, "cantidad": 5}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.SalidaCreatedResponse](t, resp)
	assert.Equal(t, "Salida registrada exitosamente", created.Message)

	resp = env.do(t, http.MethodGet, "/api/salidas/ultimo-numero/sugerencia", env.userToken, nil)
	assert.Equal(t, "SAL-2024-002", decode[dto.ActaSuggestionResponse](t, resp).Sugerencia)

	resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/salidas/%d/acta", created.Salida.IDSalida), env.userToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/salidas/999", env.userToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Salida no encontrada", decode[dto.ErrorResponse](t, resp).Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración de usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_CrearYListarUsuarios(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/admin/users", env.adminToken, map[string]any{
		"email": "Nuevo@Example.com", "password": testPassword, "username": "nuevo", "nombre": "Ana",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decode[dto.UserCreatedResponse](t, resp)
	assert.True(t, created.Success)
	assert.Equal(t, "nuevo@example.com", created.User.Email)
	assert.Equal(t, "usuario", created.User.Rol)

	resp = env.do(t, http.MethodGet, "/api/admin/users", env.adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.UserListResponse](t, resp).Users, 3)

	resp = env.do(t, http.MethodGet, "/api/admin/users", env.userToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdmin_NoPuedeDesactivarseASiMismo(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/deactivate", env.admin.ID), env.adminToken, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No puedes desactivar tu propio usuario", decode[dto.ErrorResponse](t, resp).Error)
}

func TestAdmin_DesactivarYActivar(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/auth/profile", env.userToken, nil)
	target := decode[dto.ProfileResponse](t, resp).Usuario.IDUsuario

	resp = env.do(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/deactivate", target), env.adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.UserStatusResponse](t, resp)
	assert.Equal(t, "Usuario desactivado correctamente", out.Message)
	assert.False(t, out.User.Activo)

	resp = env.do(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/activate", target), env.adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.UserStatusResponse](t, resp).User.Activo)

	resp = env.do(t, http.MethodPut, "/api/admin/users/999/activate", env.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Usuario no encontrado", decode[dto.ErrorResponse](t, resp).Error)
}
