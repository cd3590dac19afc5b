// Package identity exchanges OAuth authorization codes for a normalized user profile.
package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Profile is what every provider reduces its user info to. Email may be empty
// when the provider cannot share one.
type Profile struct {
	ProviderUserID string
	Email          string
	FirstName      string
	LastName       string
	Name           string
	AvatarURL      string
}

// GivenName falls back to the first word of Name, then "User".
func (p Profile) GivenName() string {
	if p.FirstName != "" {
		return p.FirstName
	}
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return fields[0]
	}
	return "User"
}

func (p Profile) FamilyName() string {
	if p.LastName != "" || p.FirstName != "" {
		return p.LastName
	}
	if fields := strings.Fields(p.Name); len(fields) > 1 {
		return strings.Join(fields[1:], " ")
	}
	return ""
}

type Provider interface {
	Name() string
	ExchangeCodeForProfile(ctx context.Context, code string) (*Profile, error)
}

var ErrNotConfigured = errors.New("provider credentials not configured")

// Registry resolves providers by name.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

func (r *Registry) Lookup(name string) (Provider, bool) {
	p, ok := r.providers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

const exchangeTimeout = 15 * time.Second

func withHTTPClient(ctx context.Context, client *http.Client) context.Context {
	if client == nil {
		client = &http.Client{Timeout: exchangeTimeout}
	}
	return context.WithValue(ctx, oauth2.HTTPClient, client)
}
