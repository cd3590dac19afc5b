package identity

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type GoogleProvider struct {
	conf *oauth2.Config
	// APIEndpoint overrides the userinfo service base URL.
	APIEndpoint string
	HTTPClient  *http.Client
}

func NewGoogleProvider(clientID, clientSecret, redirectURI string) *GoogleProvider {
	return &GoogleProvider{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint:     google.Endpoint,
			Scopes:       []string{googleoauth.UserinfoEmailScope, googleoauth.UserinfoProfileScope},
		},
	}
}

func (g *GoogleProvider) Name() string { return "google" }

func (g *GoogleProvider) WithEndpoint(endpoint oauth2.Endpoint) *GoogleProvider {
	g.conf.Endpoint = endpoint
	return g
}

func (g *GoogleProvider) ExchangeCodeForProfile(ctx context.Context, code string) (*Profile, error) {
	if g.conf.ClientID == "" || g.conf.ClientSecret == "" {
		return nil, ErrNotConfigured
	}

	ctx = withHTTPClient(ctx, g.HTTPClient)
	tok, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google token exchange: %w", err)
	}

	opts := []option.ClientOption{option.WithTokenSource(g.conf.TokenSource(ctx, tok))}
	if g.APIEndpoint != "" {
		opts = append(opts, option.WithEndpoint(g.APIEndpoint))
	}
	svc, err := googleoauth.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("google userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}

	return &Profile{
		ProviderUserID: info.Id,
		Email:          info.Email,
		FirstName:      info.GivenName,
		LastName:       info.FamilyName,
		Name:           info.Name,
		AvatarURL:      info.Picture,
	}, nil
}
