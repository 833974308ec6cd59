package handlers

import (
	"time"

	"github.com/serroba/golinks/internal/links"
)

// LinkPayload is the JSON shape of a link record in API responses.
type LinkPayload struct {
	Shortcut    string    `doc:"The shortcut key"          example:"gh"                 json:"shortcut"`
	URL         string    `doc:"The destination URL"       example:"https://github.com" json:"url"`
	Description string    `doc:"Free-text annotation"      json:"description"`
	CreatedAt   time.Time `doc:"First creation time"       json:"createdAt"`
	UpdatedAt   time.Time `doc:"Last write time"           json:"updatedAt"`
}

func toPayload(link links.Link) LinkPayload {
	return LinkPayload{
		Shortcut:    link.Shortcut,
		URL:         link.URL,
		Description: link.Description,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	}
}

// ListLinksResponse is the response for listing all links.
type ListLinksResponse struct {
	Body struct {
		Links []LinkPayload `json:"links"`
	}
}

// GetLinkRequest is the request for fetching a single link.
type GetLinkRequest struct {
	Shortcut string `doc:"The shortcut key" example:"gh" path:"shortcut"`
}

// GetLinkResponse is the response for fetching a single link, with its
// visit stats attached.
type GetLinkResponse struct {
	Body struct {
		LinkPayload
		Analytics links.Stats `json:"analytics"`
	}
}

// UpsertLinkRequest is the request body for creating or updating a link.
// Field presence is checked by the registry's validator, not the schema,
// so its messages reach the client unchanged.
type UpsertLinkRequest struct {
	Body struct {
		Shortcut    string `doc:"The shortcut key"     example:"gh"                 json:"shortcut,omitempty"`
		URL         string `doc:"The destination URL"  example:"https://github.com" json:"url,omitempty"`
		Description string `doc:"Free-text annotation" json:"description,omitempty"`
	}
}

// UpsertLinkResponse is the response for a create or update. Status is 201
// for a create and 200 for an update of an existing shortcut.
type UpsertLinkResponse struct {
	Status int
	Body   struct {
		Success bool `json:"success"`
		LinkPayload
		Message string `doc:"Whether the link was created or updated" json:"message"`
	}
}

// DeleteLinkRequest is the request for deleting a link.
type DeleteLinkRequest struct {
	Shortcut string `doc:"The shortcut key" example:"gh" path:"shortcut"`
}

// DeleteLinkResponse is the response for a successful delete.
type DeleteLinkResponse struct {
	Body struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		Shortcut string `json:"shortcut"`
	}
}

// RedirectRequest is the request for resolving a shortcut.
type RedirectRequest struct {
	Shortcut string `doc:"The shortcut key" example:"gh" path:"shortcut"`
}

// RedirectResponse is a redirect, either to the destination URL or to the
// management page when the shortcut is unknown.
type RedirectResponse struct {
	Status   int
	Location string `doc:"The redirect target" header:"Location"`
}
