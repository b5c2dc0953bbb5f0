package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/ye-russell/art-platform/api/models"
)

type ArtworksHandler struct {
	RequestHandler
}

func (h *ArtworksHandler) handle(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	switch h.method {
	case http.MethodGet:
		return h.get(ctx)
	case http.MethodPost:
		return h.post(ctx)
	case http.MethodPut:
		return h.put(ctx)
	case http.MethodDelete:
		return h.delete(ctx)
	default:
		return h.logAndBuildError("method not allowed: "+h.method, http.StatusMethodNotAllowed), nil
	}
}

func (h *ArtworksHandler) get(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	artworkId := h.pathParams["artworkId"]
	if artworkId == "" {
		// Optional artistId filter hits the ArtistArtworks index, which
		// also gives createdAt ordering.
		artworks, err := h.platformService.ListArtworks(ctx, h.queryParams["artistId"])
		if err != nil {
			return h.buildServiceError(err), nil
		}
		return h.buildResponse(artworks, http.StatusOK)
	}
	artwork, err := h.platformService.GetArtwork(ctx, artworkId)
	if err != nil {
		return h.buildServiceError(err), nil
	}
	return h.buildResponse(artwork, http.StatusOK)
}

func (h *ArtworksHandler) post(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	if h.claims == nil {
		return h.logAndBuildError("authentication required", http.StatusUnauthorized), nil
	}
	request, response := h.parseArtworkRequest()
	if response != nil {
		return response, nil
	}
	artwork, err := h.platformService.CreateArtwork(ctx, h.claims.Sub, *request)
	if err != nil {
		return h.buildServiceError(err), nil
	}
	return h.buildResponse(artwork, http.StatusCreated)
}

func (h *ArtworksHandler) put(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	artworkId := h.pathParams["artworkId"]
	if artworkId == "" {
		return h.logAndBuildError("artwork id is required", http.StatusBadRequest), nil
	}
	if h.claims == nil {
		return h.logAndBuildError("authentication required", http.StatusUnauthorized), nil
	}
	request, response := h.parseArtworkRequest()
	if response != nil {
		return response, nil
	}
	artwork, err := h.platformService.UpdateArtwork(ctx, artworkId, h.claims.Sub, *request)
	if err != nil {
		return h.buildServiceError(err), nil
	}
	return h.buildResponse(artwork, http.StatusOK)
}

func (h *ArtworksHandler) delete(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	artworkId := h.pathParams["artworkId"]
	if artworkId == "" {
		return h.logAndBuildError("artwork id is required", http.StatusBadRequest), nil
	}
	if h.claims == nil {
		return h.logAndBuildError("authentication required", http.StatusUnauthorized), nil
	}
	if err := h.platformService.DeleteArtwork(ctx, artworkId, h.claims.Sub); err != nil {
		return h.buildServiceError(err), nil
	}
	return buildResponseFromString("", http.StatusNoContent), nil
}

func (h *ArtworksHandler) parseArtworkRequest() (*models.ArtworkRequest, *events.APIGatewayProxyResponse) {
	var request models.ArtworkRequest
	if err := json.Unmarshal([]byte(h.body), &request); err != nil {
		return nil, h.logAndBuildError("invalid request body", http.StatusBadRequest)
	}
	if err := request.Validate(); err != nil {
		if messages := models.ValidationMessages(err); messages != nil {
			return nil, h.buildValidationError(messages)
		}
		return nil, h.buildInternalError(err)
	}
	return &request, nil
}
