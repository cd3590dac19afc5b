package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const facebookGraphURL = "https://graph.facebook.com"

type FacebookProvider struct {
	conf       *oauth2.Config
	GraphURL   string
	HTTPClient *http.Client
}

func NewFacebookProvider(appID, appSecret, redirectURI string) *FacebookProvider {
	return &FacebookProvider{
		conf: &oauth2.Config{
			ClientID:     appID,
			ClientSecret: appSecret,
			RedirectURL:  redirectURI,
			Endpoint:     facebook.Endpoint,
			Scopes:       []string{"email", "public_profile"},
		},
		GraphURL: facebookGraphURL,
	}
}

func (f *FacebookProvider) Name() string { return "facebook" }

func (f *FacebookProvider) WithEndpoint(endpoint oauth2.Endpoint) *FacebookProvider {
	f.conf.Endpoint = endpoint
	return f
}

type facebookUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Picture   struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

func (f *FacebookProvider) ExchangeCodeForProfile(ctx context.Context, code string) (*Profile, error) {
	if f.conf.ClientID == "" || f.conf.ClientSecret == "" {
		return nil, ErrNotConfigured
	}

	ctx = withHTTPClient(ctx, f.HTTPClient)
	tok, err := f.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("facebook token exchange: %w", err)
	}

	q := url.Values{"fields": {"id,name,email,first_name,last_name,picture"}}
	var user facebookUser
	if err := getJSON(ctx, f.conf.Client(ctx, tok), f.GraphURL+"/me?"+q.Encode(), &user); err != nil {
		return nil, fmt.Errorf("facebook profile: %w", err)
	}

	return &Profile{
		ProviderUserID: user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Name:           user.Name,
		AvatarURL:      user.Picture.Data.URL,
	}, nil
}

func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
