package models

// Principal is the authenticated end user as established by the identity
// provider: an opaque unique identifier plus a display name. It is resolved
// from the session once per request and injected into the handler context.
type Principal struct {
	OID  string `json:"oid"`
	Name string `json:"name"`
}
