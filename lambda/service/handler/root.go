package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/ye-russell/art-platform/api/models"
)

func (h *RequestHandler) handle(ctx context.Context) (response *events.APIGatewayProxyResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorf("panic handling %s %s: %v", h.method, h.path, r)
			response = h.buildInternalError(fmt.Errorf("%v", r))
			err = nil
		}
	}()

	switch {
	case strings.HasPrefix(h.path, "/api/artists"):
		artistsHandler := ArtistsHandler{*h}
		return artistsHandler.handle(ctx)
	case strings.HasPrefix(h.path, "/api/artworks"):
		artworksHandler := ArtworksHandler{*h}
		return artworksHandler.handle(ctx)
	case strings.HasPrefix(h.path, "/api/uploads"):
		uploadsHandler := UploadsHandler{*h}
		return uploadsHandler.handle(ctx)
	case strings.HasPrefix(h.path, "/api/user"):
		userHandler := UserHandler{*h}
		return userHandler.handle(ctx)
	default:
		return h.logAndBuildError("resource not found: "+h.path, http.StatusNotFound), nil
	}
}

// buildServiceError translates the typed errors the service layer returns
// into response codes; anything unrecognized is an internal failure.
func (h *RequestHandler) buildServiceError(err error) *events.APIGatewayProxyResponse {
	switch err.(type) {
	case models.ArtistNotFoundError, models.ArtworkNotFoundError:
		return h.logAndBuildError(err.Error(), http.StatusNotFound)
	case models.NotOwnerError:
		return h.logAndBuildError(err.Error(), http.StatusForbidden)
	default:
		return h.buildInternalError(err)
	}
}
