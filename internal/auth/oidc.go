package auth

import (
	"context"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"tracker-service/internal/config"
	"tracker-service/internal/models"
)

// Authenticator wraps the OIDC authorization-code ceremony against the
// external identity provider. The application never sees credentials, only
// the verified ID-token claims.
type Authenticator struct {
	provider  *oidc.Provider
	verifier  *oidc.IDTokenVerifier
	oauth     oauth2.Config
	logoutURL string
}

// NewAuthenticator discovers the provider's endpoints from the issuer URL and
// prepares the code-flow configuration.
func NewAuthenticator(ctx context.Context, cfg *config.Config) (*Authenticator, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, errors.Wrap(err, "discover oidc provider")
	}
	return &Authenticator{
		provider: provider,
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID}),
		oauth: oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.RedirectURL(),
			Endpoint:     provider.Endpoint(),
			Scopes:       cfg.OIDCScopes,
		},
		logoutURL: cfg.OIDCLogoutURL,
	}, nil
}

// Flow is one in-flight login attempt. State and Nonce are kept in the
// session and checked when the provider redirects back.
type Flow struct {
	State   string
	Nonce   string
	AuthURL string
}

// BeginFlow starts a fresh authorization-code flow.
func (a *Authenticator) BeginFlow() Flow {
	state := uuid.NewString()
	nonce := uuid.NewString()
	return Flow{
		State:   state,
		Nonce:   nonce,
		AuthURL: a.oauth.AuthCodeURL(state, oidc.Nonce(nonce)),
	}
}

// Exchange redeems the authorization code, verifies the returned ID token
// against the provider's keys and the flow nonce, and extracts the principal.
func (a *Authenticator) Exchange(ctx context.Context, code, nonce string) (*models.Principal, error) {
	token, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange authorization code")
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("token response has no id_token")
	}
	idToken, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}
	if idToken.Nonce != nonce {
		return nil, errors.New("id token nonce mismatch")
	}

	var claims struct {
		OID  string `json:"oid"`
		Name string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.Wrap(err, "decode id token claims")
	}
	oid := claims.OID
	if oid == "" {
		// Providers without an oid claim identify the subject via sub.
		oid = idToken.Subject
	}
	return &models.Principal{OID: oid, Name: claims.Name}, nil
}

// LogoutURL returns the provider's end-session URL carrying the post-logout
// redirect, or the local redirect when no end-session endpoint is configured.
func (a *Authenticator) LogoutURL(postLogoutRedirect string) string {
	if a.logoutURL == "" {
		return postLogoutRedirect
	}
	return a.logoutURL + "?post_logout_redirect_uri=" + url.QueryEscape(postLogoutRedirect)
}
