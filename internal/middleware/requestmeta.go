package middleware

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/golinks/internal/handlers"
)

// RequestMeta adds referrer, user-agent, and coarse geography from the
// request headers to the context, for the analytics side channel.
func RequestMeta(_ huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		meta := handlers.RequestMeta{
			Referrer:  headerOr(ctx, "Referer", "direct"),
			UserAgent: headerOr(ctx, "User-Agent", "unknown"),
			// Country code injected by Cloudflare when fronted by it.
			Country: headerOr(ctx, "CF-IPCountry", "unknown"),
		}

		newCtx := handlers.ContextWithRequestMeta(ctx.Context(), meta)
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}

func headerOr(ctx huma.Context, name, fallback string) string {
	if v := ctx.Header(name); v != "" {
		return v
	}

	return fallback
}
