package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/ye-russell/art-platform/api/models"
)

type ArtistsHandler struct {
	RequestHandler
}

func (h *ArtistsHandler) handle(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
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

func (h *ArtistsHandler) get(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	artistId := h.pathParams["artistId"]
	if artistId == "" {
		artists, err := h.platformService.ListArtists(ctx)
		if err != nil {
			return h.buildServiceError(err), nil
		}
		return h.buildResponse(artists, http.StatusOK)
	}
	artist, err := h.platformService.GetArtist(ctx, artistId)
	if err != nil {
		return h.buildServiceError(err), nil
	}
	return h.buildResponse(artist, http.StatusOK)
}

func (h *ArtistsHandler) post(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	if h.claims == nil {
		return h.logAndBuildError("authentication required", http.StatusUnauthorized), nil
	}
	request, response := h.parseArtistRequest()
	if response != nil {
		return response, nil
	}
	artist, err := h.platformService.CreateArtist(ctx, h.claims.Sub, *request)
	if err != nil {
		return h.buildServiceError(err), nil
	}
	return h.buildResponse(artist, http.StatusCreated)
}

func (h *ArtistsHandler) put(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	artistId := h.pathParams["artistId"]
	if artistId == "" {
		return h.logAndBuildError("artist id is required", http.StatusBadRequest), nil
	}
	if h.claims == nil {
		return h.logAndBuildError("authentication required", http.StatusUnauthorized), nil
	}
	request, response := h.parseArtistRequest()
	if response != nil {
		return response, nil
	}
	artist, err := h.platformService.UpdateArtist(ctx, artistId, h.claims.Sub, *request)
	if err != nil {
		return h.buildServiceError(err), nil
	}
	return h.buildResponse(artist, http.StatusOK)
}

func (h *ArtistsHandler) delete(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	artistId := h.pathParams["artistId"]
	if artistId == "" {
		return h.logAndBuildError("artist id is required", http.StatusBadRequest), nil
	}
	if h.claims == nil {
		return h.logAndBuildError("authentication required", http.StatusUnauthorized), nil
	}
	if err := h.platformService.DeleteArtist(ctx, artistId, h.claims.Sub); err != nil {
		return h.buildServiceError(err), nil
	}
	return buildResponseFromString("", http.StatusNoContent), nil
}

func (h *ArtistsHandler) parseArtistRequest() (*models.ArtistRequest, *events.APIGatewayProxyResponse) {
	var request models.ArtistRequest
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
