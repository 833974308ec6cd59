package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/golinks/internal/auth"
)

// RegisterRoutes registers the management API and the redirect route.
// Management operations carry the auth metadata flag consumed by
// middleware.RequireBearer; the redirect path is public.
func RegisterRoutes(api huma.API, h *LinkHandler) {
	authRequired := map[string]any{auth.MetadataKey: true}

	huma.Register(api, huma.Operation{
		OperationID: "list-links",
		Method:      http.MethodGet,
		Path:        "/_api/links",
		Summary:     "List links",
		Description: "Lists every stored link, in the store's enumeration order.",
		Tags:        []string{"Links"},
		Metadata:    authRequired,
	}, h.ListLinks)

	huma.Register(api, huma.Operation{
		OperationID: "get-link",
		Method:      http.MethodGet,
		Path:        "/_api/links/{shortcut}",
		Summary:     "Get link",
		Description: "Fetches a single link with its visit stats.",
		Tags:        []string{"Links"},
		Metadata:    authRequired,
	}, h.GetLink)

	huma.Register(api, huma.Operation{
		OperationID:   "upsert-link",
		Method:        http.MethodPost,
		Path:          "/_api/links",
		Summary:       "Create or update link",
		Description:   "Creates a link, or updates it when the shortcut already exists (201 vs 200).",
		Tags:          []string{"Links"},
		DefaultStatus: http.StatusCreated,
		Metadata:      authRequired,
	}, h.UpsertLink)

	huma.Register(api, huma.Operation{
		OperationID: "delete-link",
		Method:      http.MethodDelete,
		Path:        "/_api/links/{shortcut}",
		Summary:     "Delete link",
		Description: "Removes a link entirely; no tombstone is kept.",
		Tags:        []string{"Links"},
		Metadata:    authRequired,
	}, h.DeleteLink)

	huma.Register(api, huma.Operation{
		OperationID:   "redirect",
		Method:        http.MethodGet,
		Path:          "/{shortcut}",
		Summary:       "Redirect to destination",
		Description:   "Resolves a shortcut and redirects to its destination, or to the management page when unknown.",
		Tags:          []string{"Redirect"},
		DefaultStatus: http.StatusFound,
	}, h.Redirect)
}
