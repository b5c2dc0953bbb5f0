package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	log "github.com/sirupsen/logrus"
	"github.com/ye-russell/art-platform/api/logging"
	"github.com/ye-russell/art-platform/api/service"
	"github.com/ye-russell/art-platform/api/store"
)

// Clients and config are created once per process by main and shared across
// invocations.
var (
	DynamoClient   *dynamodb.Client
	S3Client       *s3.Client
	SQSClient      *sqs.Client
	CognitoClient  *cognitoidentityprovider.Client
	PlatformConfig *store.Config
)

// ArtPlatformHandler is the lambda entry point for the API.
func ArtPlatformHandler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	claims := ParseClaims(&request)
	handler := NewHandler(&request, claims).WithDefaultService()
	return handler.handle(ctx)
}

// responseHeaders is the envelope every response carries. The frontend is
// served from a different origin, so CORS stays permissive.
var responseHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type,Authorization,X-Amz-Date,X-Api-Key",
}

// RequestHandler wraps the incoming request with a logger and a
// service.PlatformService. Some request params are pulled out for convenience.
// Use NewHandler followed by WithDefaultService to have things initialized
// nicely. Use WithService in tests where a mock service.PlatformService is
// required.
type RequestHandler struct {
	request   *events.APIGatewayProxyRequest
	requestID string

	method      string
	path        string
	pathParams  map[string]string
	queryParams map[string]string
	body        string

	logger          *log.Entry
	platformService service.PlatformService
	claims          *Claims
}

// NewHandler creates a RequestHandler that has its logger field initialized
// with useful fields.
func NewHandler(request *events.APIGatewayProxyRequest, claims *Claims) *RequestHandler {
	reqID := request.RequestContext.RequestID
	logger := log.WithFields(log.Fields{
		"requestID": reqID,
	})
	requestHandler := RequestHandler{
		request:   request,
		requestID: reqID,

		method:      request.HTTPMethod,
		path:        request.Path,
		pathParams:  request.PathParameters,
		queryParams: request.QueryStringParameters,
		body:        request.Body,

		logger: logger,
		claims: claims,
	}
	logger.WithFields(log.Fields{
		"method":      requestHandler.method,
		"path":        requestHandler.path,
		"pathParams":  requestHandler.pathParams,
		"queryParams": requestHandler.queryParams,
		"claims":      requestHandler.claims}).Info("creating RequestHandler")

	return &requestHandler
}

// WithDefaultService adds a service.PlatformService built from the
// process-wide AWS clients, logging through this handler's request-scoped
// entry.
func (h *RequestHandler) WithDefaultService() *RequestHandler {
	h.platformService = service.NewPlatformService(DynamoClient, S3Client, SQSClient, CognitoClient, PlatformConfig, &logging.Log{Entry: h.logger})
	return h
}

// WithService simply attaches the passed in service.PlatformService to the
// RequestHandler. Used for tests that do not need AWS clients.
func (h *RequestHandler) WithService(service service.PlatformService) *RequestHandler {
	h.platformService = service
	return h
}

type errorBody struct {
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func (h *RequestHandler) logAndBuildError(message string, status int) *events.APIGatewayProxyResponse {
	h.logger.Error(message)
	body, _ := json.Marshal(errorBody{Message: message})
	return buildResponseFromString(string(body), status)
}

// buildValidationError reports every failing field at once so the caller can
// fix the whole payload in one round trip.
func (h *RequestHandler) buildValidationError(messages []string) *events.APIGatewayProxyResponse {
	h.logger.WithFields(log.Fields{"errors": messages}).Error("validation failed")
	body, _ := json.Marshal(errorBody{Message: "Validation Failed", Errors: messages})
	return buildResponseFromString(string(body), http.StatusBadRequest)
}

// buildInternalError reports an unexpected failure. The underlying message is
// only surfaced when the deployment opts into it; see DESIGN.md.
func (h *RequestHandler) buildInternalError(err error) *events.APIGatewayProxyResponse {
	h.logger.Errorf("internal error: %v", err)
	body := errorBody{Message: "Internal Server Error"}
	if PlatformConfig != nil && PlatformConfig.ExposeInternalErrors {
		body.Error = err.Error()
	}
	bodyBytes, _ := json.Marshal(body)
	return buildResponseFromString(string(bodyBytes), http.StatusInternalServerError)
}

func (h *RequestHandler) buildResponse(body any, status int) (*events.APIGatewayProxyResponse, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		h.logger.Errorf("error marshalling body: [%v]: %s", body, err)
		return nil, err
	}
	return buildResponseFromString(string(bodyBytes), status), nil
}

func buildResponseFromString(body string, status int) *events.APIGatewayProxyResponse {
	response := events.APIGatewayProxyResponse{
		Body:       body,
		StatusCode: status,
		Headers:    responseHeaders,
	}
	return &response
}
