package firebaseprovider

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"
	"strings"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseService struct {
	client tokenVerifier
}

func NewFirebaseProvider(ctx context.Context, credentialsFile string) (providers.FirebaseProvider, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase auth")
	}

	return &firebaseService{client: authClient}, nil
}

// VerifyIDToken checks the token signature and maps its claims onto an Identity.
func (f *firebaseService) VerifyIDToken(ctx context.Context, idToken string) (models.Identity, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return models.Identity{}, errors.Wrap(err, "invalid firebase token")
	}
	return identityFromToken(token), nil
}

func identityFromToken(token *firebaseauth.Token) models.Identity {
	id := models.Identity{Subject: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		parts := strings.Fields(name)
		if len(parts) > 0 {
			id.FirstName = parts[0]
			id.LastName = strings.Join(parts[1:], " ")
		}
	}
	return id
}
