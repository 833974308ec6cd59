package middleware

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/golinks/internal/auth"
)

// RequireBearer returns a Huma middleware that enforces the shared bearer
// token on operations whose metadata sets auth.MetadataKey. Other
// operations pass through untouched.
func RequireBearer(api huma.API, secret string) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op := ctx.Operation()
		if op == nil || op.Metadata[auth.MetadataKey] != true {
			next(ctx)

			return
		}

		ok, message := auth.Verify(ctx.Header("Authorization"), secret)
		if !ok {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, message)

			return
		}

		next(ctx)
	}
}
