package http

import (
	"net/http"
	"strings"

	"courierhub/internal/core/domain/model/kernel"

	"aidanwoods.dev/go-paseto"
	"github.com/labstack/echo/v4"
)

const tenantContextKey = "tenant"

// TenantAuth verifies Bearer PASETO v4 public tokens and resolves the
// calling franchise. The token must carry a "franchise_id" claim holding the
// franchise UUID; every downstream read and write is scoped to it.
type TenantAuth struct {
	publicKey paseto.V4AsymmetricPublicKey
	parser    paseto.Parser
}

// NewTenantAuth creates the auth middleware from a hex-encoded Ed25519
// public key.
func NewTenantAuth(publicKeyHex string) (*TenantAuth, error) {
	publicKey, err := paseto.NewV4AsymmetricPublicKeyFromHex(publicKeyHex)
	if err != nil {
		return nil, err
	}

	return &TenantAuth{
		publicKey: publicKey,
		parser:    paseto.NewParser(),
	}, nil
}

// Middleware returns an echo middleware rejecting requests without a valid
// token. On success the tenant is stored on the request context.
func (a *TenantAuth) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return ctx.JSON(http.StatusUnauthorized,
					envelope{Success: false, Message: "missing bearer token"})
			}

			token, err := a.parser.ParseV4Public(a.publicKey, raw, nil)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized,
					envelope{Success: false, Message: "invalid token"})
			}

			franchiseIDString, err := token.GetString("franchise_id")
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized,
					envelope{Success: false, Message: "token has no franchise"})
			}

			franchiseID, err := kernel.UUIDFromString(franchiseIDString)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized,
					envelope{Success: false, Message: "token has no franchise"})
			}

			tenant, err := kernel.NewTenant(franchiseID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized,
					envelope{Success: false, Message: "token has no franchise"})
			}

			ctx.Set(tenantContextKey, tenant)
			return next(ctx)
		}
	}
}

// tenantFromContext returns the tenant stored by the auth middleware.
func tenantFromContext(ctx echo.Context) (kernel.Tenant, bool) {
	tenant, found := ctx.Get(tenantContextKey).(kernel.Tenant)
	return tenant, found
}
