package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"tracker-service/internal/models"
)

// Session keys for the identity claims and the in-flight login attempt.
const (
	SessionKeyUserOID   = "user_oid"
	SessionKeyUserName  = "user_name"
	SessionKeyFlowState = "flow_state"
	SessionKeyFlowNonce = "flow_nonce"
)

const principalKey = "principal"

// RequireLogin resolves the principal from the session once per request and
// injects it into the handler context. Requests without a signed-in user are
// redirected to the login entry point.
func RequireLogin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		oid, _ := sess.Get(SessionKeyUserOID).(string)
		if oid == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		name, _ := sess.Get(SessionKeyUserName).(string)
		SetPrincipal(c, models.Principal{OID: oid, Name: name})
		return c.Next()
	}
}

// SetPrincipal injects the principal into the request context.
func SetPrincipal(c *fiber.Ctx, principal models.Principal) {
	c.Locals(principalKey, principal)
}

// CurrentPrincipal returns the principal injected by RequireLogin. Handlers
// behind the login gate can rely on it being set.
func CurrentPrincipal(c *fiber.Ctx) models.Principal {
	principal, _ := c.Locals(principalKey).(models.Principal)
	return principal
}

// SignIn stores the verified identity claims in the session.
func SignIn(sess *session.Session, principal *models.Principal) error {
	sess.Set(SessionKeyUserOID, principal.OID)
	sess.Set(SessionKeyUserName, principal.Name)
	sess.Delete(SessionKeyFlowState)
	sess.Delete(SessionKeyFlowNonce)
	return sess.Save()
}
