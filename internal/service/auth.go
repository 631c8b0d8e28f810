package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"github.com/nousrire/backend/internal/errors"
	"github.com/nousrire/backend/internal/logger"
)

// AuthService is the session gate: one shared operator credential pair,
// checked against values configured at process start. There is no user
// model, no expiry and no token verification beyond marker presence.
type AuthService interface {
	// Authenticate returns an opaque session marker on credential match.
	Authenticate(email, password string) (string, error)
}

type Auth struct {
	adminEmail    string
	adminPassword string
	configured    bool
}

// NewAuth wires the gate with the configured credentials. Absence of
// either value fails every future attempt closed; this is logged once
// here as a startup-class configuration error.
func NewAuth(adminEmail, adminPassword string) AuthService {
	configured := adminEmail != "" && adminPassword != ""
	if !configured {
		logger.Log.Error("admin credentials not configured, admin panel disabled")
	}
	return &Auth{adminEmail: adminEmail, adminPassword: adminPassword, configured: configured}
}

func (a *Auth) Authenticate(email, password string) (string, error) {
	if !a.configured {
		return "", &errors.ErrorWithStatusCode{Message: "Admin access is not available", StatusCode: 401}
	}

	emailOk := subtle.ConstantTimeCompare([]byte(email), []byte(a.adminEmail)) == 1
	passwordOk := subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPassword)) == 1
	if !emailOk || !passwordOk {
		return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: 401}
	}

	return newSessionMarker()
}

// newSessionMarker mints a random opaque value. The middleware only
// checks the marker's presence, not this value: it is a capability
// flag, not a verifiable token.
func newSessionMarker() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}
