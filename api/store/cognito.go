package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// UserProfile is what the identity provider knows about a user beyond the
// claims that rode in on the request.
type UserProfile struct {
	UserId string
	Email  string
}

// IdentityStore resolves user profiles from the Cognito user pool.
type IdentityStore interface {
	GetUserProfile(ctx context.Context, userId string) (*UserProfile, error)
}

type cognitoStore struct {
	Client     *cognitoidentityprovider.Client
	UserPoolId string
}

func NewIdentityStore(client *cognitoidentityprovider.Client, userPoolId string) IdentityStore {
	return &cognitoStore{Client: client, UserPoolId: userPoolId}
}

func (c *cognitoStore) GetUserProfile(ctx context.Context, userId string) (*UserProfile, error) {
	out, err := c.Client.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(c.UserPoolId),
		Username:   aws.String(userId),
	})
	if err != nil {
		return nil, fmt.Errorf("api/store/cognito: error looking up user %s: %w", userId, err)
	}
	profile := UserProfile{UserId: userId}
	for _, attr := range out.UserAttributes {
		if attr.Name != nil && *attr.Name == "email" && attr.Value != nil {
			profile.Email = *attr.Value
		}
	}
	return &profile, nil
}
