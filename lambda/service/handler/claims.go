package handler

import (
	"github.com/aws/aws-lambda-go/events"
)

// Claims is the verified identity the Cognito authorizer attached upstream.
// A nil *Claims means the request came in anonymously.
type Claims struct {
	Sub   string
	Email string
}

// ParseClaims pulls the Cognito claims off a REST API request context. The
// authorizer stores them as a loosely typed map under the "claims" key.
func ParseClaims(request *events.APIGatewayProxyRequest) *Claims {
	authorizer := request.RequestContext.Authorizer
	if authorizer == nil {
		return nil
	}
	rawClaims, ok := authorizer["claims"].(map[string]interface{})
	if !ok {
		return nil
	}
	sub, _ := rawClaims["sub"].(string)
	if sub == "" {
		return nil
	}
	email, _ := rawClaims["email"].(string)
	return &Claims{Sub: sub, Email: email}
}
