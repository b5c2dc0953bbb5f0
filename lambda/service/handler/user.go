package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

type UserHandler struct {
	RequestHandler
}

func (h *UserHandler) handle(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	switch h.method {
	case http.MethodGet:
		return h.get(ctx)
	default:
		return h.logAndBuildError("method not allowed: "+h.method, http.StatusMethodNotAllowed), nil
	}
}

func (h *UserHandler) get(ctx context.Context) (*events.APIGatewayProxyResponse, error) {
	if h.claims == nil {
		return h.logAndBuildError("authentication required", http.StatusUnauthorized), nil
	}
	account, err := h.platformService.GetUserAccount(ctx, h.claims.Sub, h.claims.Email)
	if err != nil {
		return h.buildServiceError(err), nil
	}
	return h.buildResponse(account, http.StatusOK)
}
