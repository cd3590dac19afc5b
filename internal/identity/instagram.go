package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

const instagramGraphURL = "https://graph.instagram.com"

var instagramEndpoint = oauth2.Endpoint{
	AuthURL:   "https://api.instagram.com/oauth/authorize",
	TokenURL:  "https://api.instagram.com/oauth/access_token",
	AuthStyle: oauth2.AuthStyleInParams,
}

// InstagramProvider only has access to the basic display scope, which carries
// no email address. Profiles it returns always have an empty Email.
type InstagramProvider struct {
	conf       *oauth2.Config
	GraphURL   string
	HTTPClient *http.Client
}

func NewInstagramProvider(clientID, clientSecret, redirectURI string) *InstagramProvider {
	return &InstagramProvider{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint:     instagramEndpoint,
			Scopes:       []string{"user_profile"},
		},
		GraphURL: instagramGraphURL,
	}
}

func (i *InstagramProvider) Name() string { return "instagram" }

func (i *InstagramProvider) WithEndpoint(endpoint oauth2.Endpoint) *InstagramProvider {
	i.conf.Endpoint = endpoint
	return i
}

type instagramUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (i *InstagramProvider) ExchangeCodeForProfile(ctx context.Context, code string) (*Profile, error) {
	if i.conf.ClientID == "" || i.conf.ClientSecret == "" {
		return nil, ErrNotConfigured
	}

	ctx = withHTTPClient(ctx, i.HTTPClient)
	tok, err := i.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("instagram token exchange: %w", err)
	}

	q := url.Values{"fields": {"id,username"}}
	var user instagramUser
	if err := getJSON(ctx, i.conf.Client(ctx, tok), i.GraphURL+"/me?"+q.Encode(), &user); err != nil {
		return nil, fmt.Errorf("instagram profile: %w", err)
	}

	return &Profile{
		ProviderUserID: user.ID,
		FirstName:      user.Username,
		Name:           user.Username,
	}, nil
}
