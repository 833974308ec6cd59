package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/serroba/golinks/internal/analytics"
	"github.com/serroba/golinks/internal/links"
	"github.com/serroba/golinks/internal/messaging"
	"go.uber.org/zap"
)

// LinkHandler serves the management API and the redirect path.
type LinkHandler struct {
	service        *links.Service
	publishVisited messaging.Publish[analytics.LinkVisitedEvent]
	logger         *zap.Logger
}

// NewLinkHandler creates a link handler.
func NewLinkHandler(
	service *links.Service,
	publishVisited messaging.Publish[analytics.LinkVisitedEvent],
	logger *zap.Logger,
) *LinkHandler {
	return &LinkHandler{
		service:        service,
		publishVisited: publishVisited,
		logger:         logger,
	}
}

// ListLinks returns every stored link.
func (h *LinkHandler) ListLinks(ctx context.Context, _ *struct{}) (*ListLinksResponse, error) {
	all, err := h.service.List(ctx)
	if err != nil {
		h.logger.Error("failed to list links", zap.Error(err))

		return nil, huma.Error500InternalServerError("Failed to list links")
	}

	resp := &ListLinksResponse{}
	resp.Body.Links = make([]LinkPayload, 0, len(all))

	for _, link := range all {
		resp.Body.Links = append(resp.Body.Links, toPayload(link))
	}

	return resp, nil
}

// GetLink returns a single link with its visit stats.
func (h *LinkHandler) GetLink(ctx context.Context, req *GetLinkRequest) (*GetLinkResponse, error) {
	link, stats, err := h.service.Get(ctx, req.Shortcut)
	if err != nil {
		if errors.Is(err, links.ErrNotFound) {
			return nil, huma.Error404NotFound("Link not found")
		}

		h.logger.Error("failed to get link",
			zap.String("shortcut", req.Shortcut),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("Failed to get link")
	}

	resp := &GetLinkResponse{}
	resp.Body.LinkPayload = toPayload(link)
	resp.Body.Analytics = stats

	return resp, nil
}

// UpsertLink creates a new link or updates an existing one.
func (h *LinkHandler) UpsertLink(ctx context.Context, req *UpsertLinkRequest) (*UpsertLinkResponse, error) {
	result, err := h.service.CreateOrUpdate(ctx, req.Body.Shortcut, req.Body.URL, req.Body.Description)
	if err != nil {
		var verr *links.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Message)
		}

		h.logger.Error("failed to create/update link",
			zap.String("shortcut", req.Body.Shortcut),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("Failed to create/update link")
	}

	resp := &UpsertLinkResponse{Status: http.StatusOK}
	if result.Created {
		resp.Status = http.StatusCreated
	}

	resp.Body.Success = true
	resp.Body.LinkPayload = toPayload(result.Link)
	resp.Body.Message = result.Message

	return resp, nil
}

// DeleteLink removes a link.
func (h *LinkHandler) DeleteLink(ctx context.Context, req *DeleteLinkRequest) (*DeleteLinkResponse, error) {
	if err := h.service.Delete(ctx, req.Shortcut); err != nil {
		if errors.Is(err, links.ErrNotFound) {
			return nil, huma.Error404NotFound("Link not found")
		}

		h.logger.Error("failed to delete link",
			zap.String("shortcut", req.Shortcut),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("Failed to delete link")
	}

	resp := &DeleteLinkResponse{}
	resp.Body.Success = true
	resp.Body.Message = "Link deleted"
	resp.Body.Shortcut = links.Normalize(req.Shortcut)

	return resp, nil
}

// Redirect resolves a shortcut. Hits redirect to the destination with a
// temporary status so edits take effect immediately; misses redirect to
// the management page with the shortcut pre-filled for creation.
func (h *LinkHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	shortcut := links.Normalize(req.Shortcut)

	link, err := h.service.Resolve(ctx, shortcut)
	if err != nil {
		if errors.Is(err, links.ErrNotFound) {
			resp := &RedirectResponse{Status: http.StatusFound}
			resp.Location = "/_manage?shortcut=" + url.QueryEscape(shortcut)

			return resp, nil
		}

		h.logger.Error("failed to resolve link",
			zap.String("shortcut", shortcut),
			zap.Error(err),
		)

		if errors.Is(err, links.ErrCorruptRecord) {
			return nil, huma.Error500InternalServerError("Invalid link data")
		}

		return nil, huma.Error500InternalServerError("Failed to resolve link")
	}

	h.trackVisit(ctx, shortcut)

	resp := &RedirectResponse{Status: http.StatusFound}
	resp.Location = link.URL

	return resp, nil
}

// trackVisit dispatches a visit event without blocking the redirect.
// Publish failures are logged and swallowed.
func (h *LinkHandler) trackVisit(ctx context.Context, shortcut string) {
	meta := RequestMetaFromContext(ctx)

	event := &analytics.LinkVisitedEvent{
		ID:        uuid.NewString(),
		Shortcut:  shortcut,
		Referrer:  meta.Referrer,
		UserAgent: meta.UserAgent,
		Country:   meta.Country,
		VisitedAt: time.Now().UTC(),
	}

	go func() {
		if err := h.publishVisited(event); err != nil {
			h.logger.Error("failed to publish link visited event",
				zap.String("shortcut", event.Shortcut),
				zap.Error(err),
			)
		}
	}()
}
