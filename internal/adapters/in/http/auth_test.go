package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"courierhub/internal/core/domain/model/kernel"

	"aidanwoods.dev/go-paseto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secretKey paseto.V4AsymmetricSecretKey, franchiseID string) string {
	t.Helper()

	token := paseto.NewToken()
	if franchiseID != "" {
		token.SetString("franchise_id", franchiseID)
	}
	return token.V4Sign(secretKey, nil)
}

func invokeMiddleware(auth *TenantAuth, authorization string) (*httptest.ResponseRecorder, kernel.Tenant, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shipments", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var tenant kernel.Tenant
	var reached bool
	handler := auth.Middleware()(func(ctx echo.Context) error {
		tenant, reached = tenantFromContext(ctx)
		return ctx.NoContent(http.StatusOK)
	})

	_ = handler(ctx)
	return rec, tenant, reached
}

func TestMiddleware_ValidToken_ResolvesTenant(t *testing.T) {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	auth, err := NewTenantAuth(secretKey.Public().ExportHex())
	require.NoError(t, err)

	franchiseID := kernel.NewUUID()
	raw := signToken(t, secretKey, franchiseID.String())

	rec, tenant, reached := invokeMiddleware(auth, "Bearer "+raw)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, reached)
	assert.Equal(t, franchiseID.String(), tenant.FranchiseID().String())
}

func TestMiddleware_MissingHeader_Returns401(t *testing.T) {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	auth, err := NewTenantAuth(secretKey.Public().ExportHex())
	require.NoError(t, err)

	rec, _, reached := invokeMiddleware(auth, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestMiddleware_GarbageToken_Returns401(t *testing.T) {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	auth, err := NewTenantAuth(secretKey.Public().ExportHex())
	require.NoError(t, err)

	rec, _, reached := invokeMiddleware(auth, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestMiddleware_TokenSignedByOtherKey_Returns401(t *testing.T) {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	otherKey := paseto.NewV4AsymmetricSecretKey()
	auth, err := NewTenantAuth(secretKey.Public().ExportHex())
	require.NoError(t, err)

	raw := signToken(t, otherKey, kernel.NewUUID().String())

	rec, _, reached := invokeMiddleware(auth, "Bearer "+raw)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestMiddleware_TokenWithoutFranchiseClaim_Returns401(t *testing.T) {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	auth, err := NewTenantAuth(secretKey.Public().ExportHex())
	require.NoError(t, err)

	raw := signToken(t, secretKey, "")

	rec, _, reached := invokeMiddleware(auth, "Bearer "+raw)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "token has no franchise")
}

func TestMiddleware_FranchiseClaimNotAUUID_Returns401(t *testing.T) {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	auth, err := NewTenantAuth(secretKey.Public().ExportHex())
	require.NoError(t, err)

	raw := signToken(t, secretKey, "franchise-42")

	rec, _, reached := invokeMiddleware(auth, "Bearer "+raw)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestNewTenantAuth_BadKeyHex_ReturnsError(t *testing.T) {
	_, err := NewTenantAuth("zz")
	assert.Error(t, err)
}
