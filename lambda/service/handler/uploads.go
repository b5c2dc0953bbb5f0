package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/ye-russell/art-platform/api/models"
)

type UploadsHandler struct {
	RequestHandler
}

func (h *UploadsHandler) handle(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	switch h.method {
	case http.MethodPost:
		return h.post(ctx)
	default:
		return h.logAndBuildError("method not allowed: "+h.method, http.StatusMethodNotAllowed), nil
	}
}

func (h *UploadsHandler) post(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	if h.claims == nil {
		return h.logAndBuildError("authentication required", http.StatusUnauthorized), nil
	}
	var request models.UploadRequest
	if err := json.Unmarshal([]byte(h.body), &request); err != nil {
		return h.logAndBuildError("invalid request body", http.StatusBadRequest), nil
	}
	if err := request.Validate(); err != nil {
		if messages := models.ValidationMessages(err); messages != nil {
			return h.buildValidationError(messages), nil
		}
		return h.buildInternalError(err), nil
	}
	upload, err := h.platformService.CreateUpload(ctx, h.claims.Sub, request)
	if err != nil {
		return h.buildServiceError(err), nil
	}
	return h.buildResponse(upload, http.StatusOK)
}
