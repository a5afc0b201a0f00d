package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/require"

	"tracker-service/internal/models"
)

func TestRequireLogin(t *testing.T) {
	store := session.New()
	app := fiber.New()
	app.Get("/signin", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		require.NoError(t, err)
		return SignIn(sess, &models.Principal{OID: "oid-1", Name: "Dana"})
	})
	app.Get("/private", RequireLogin(store), func(c *fiber.Ctx) error {
		principal := CurrentPrincipal(c)
		return c.SendString(principal.OID + "/" + principal.Name)
	})

	// no session yet
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/private", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	// sign in, carry the session cookie into the next request
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/signin", nil))
	require.NoError(t, err)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(fiber.MethodGet, "/private", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
