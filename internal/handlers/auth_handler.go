package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"

	"tracker-service/internal/auth"
)

// AuthHandler drives the login ceremony against the identity provider and
// the session lifecycle around it.
type AuthHandler struct {
	authenticator *auth.Authenticator
	store         *session.Store
	baseURL       string
}

func NewAuthHandler(authenticator *auth.Authenticator, store *session.Store, baseURL string) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		store:         store,
		baseURL:       baseURL,
	}
}

// Index sends signed-in users to their project list and everyone else to the
// login entry point.
func (h *AuthHandler) Index(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		if oid, _ := sess.Get(auth.SessionKeyUserOID).(string); oid != "" {
			return c.Redirect("/projects", fiber.StatusFound)
		}
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// Login starts a fresh authorization-code flow and renders the sign-in page.
// State and nonce stay in the session until the provider redirects back.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		log.Error().Err(err).Msg("opening session failed")
		return renderProblem(c)
	}
	flow := h.authenticator.BeginFlow()
	sess.Set(auth.SessionKeyFlowState, flow.State)
	sess.Set(auth.SessionKeyFlowNonce, flow.Nonce)
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("saving session failed")
		return renderProblem(c)
	}
	return c.Render("login", fiber.Map{
		"AuthURL": flow.AuthURL,
	})
}

// Callback is the provider's redirect target. A state mismatch (stale link,
// replay) is ignored and the request continues as if no token was returned;
// a provider-reported error renders the auth error view.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	if errCode := c.Query("error"); errCode != "" {
		return c.Render("auth_error", fiber.Map{
			"Error":       errCode,
			"Description": c.Query("error_description"),
		})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return c.Redirect("/projects", fiber.StatusFound)
	}
	state, _ := sess.Get(auth.SessionKeyFlowState).(string)
	nonce, _ := sess.Get(auth.SessionKeyFlowNonce).(string)
	code := c.Query("code")
	if state == "" || state != c.Query("state") || code == "" {
		return c.Redirect("/projects", fiber.StatusFound)
	}

	principal, err := h.authenticator.Exchange(c.Context(), code, nonce)
	if err != nil {
		log.Warn().Err(err).Msg("token exchange failed")
		return c.Render("auth_error", fiber.Map{
			"Error": "sign-in could not be completed",
		})
	}
	if err := auth.SignIn(sess, principal); err != nil {
		log.Error().Err(err).Msg("saving session failed")
		return renderProblem(c)
	}
	return c.Redirect("/projects", fiber.StatusFound)
}

// Logout wipes the session and sends the browser to the provider's
// end-session endpoint so the upstream web session ends too.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := h.store.Get(c); err == nil {
		if err := sess.Destroy(); err != nil {
			log.Error().Err(err).Msg("destroying session failed")
		}
	}
	return c.Redirect(h.authenticator.LogoutURL(h.baseURL+"/"), fiber.StatusFound)
}
