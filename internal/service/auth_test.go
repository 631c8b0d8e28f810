package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	svc := NewAuth("admin@nousrire.org", "s3cret")

	t.Run("correct credentials", func(t *testing.T) {
		marker, err := svc.Authenticate("admin@nousrire.org", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, marker)
	})

	t.Run("markers are opaque and non-repeating", func(t *testing.T) {
		m1, err := svc.Authenticate("admin@nousrire.org", "s3cret")
		require.NoError(t, err)
		m2, err := svc.Authenticate("admin@nousrire.org", "s3cret")
		require.NoError(t, err)
		assert.NotEqual(t, m1, m2)
	})

	t.Run("wrong password", func(t *testing.T) {
		marker, err := svc.Authenticate("admin@nousrire.org", "wrong")
		assert.Error(t, err)
		assert.Empty(t, marker)
	})

	t.Run("wrong email", func(t *testing.T) {
		_, err := svc.Authenticate("intruder@example.com", "s3cret")
		assert.Error(t, err)
	})
}

func TestAuthenticateFailsClosedWithoutConfig(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "No Email", email: "", password: "s3cret"},
		{name: "No Password", email: "admin@nousrire.org", password: ""},
		{name: "Nothing", email: "", password: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAuth(tc.email, tc.password)

			// Even "matching" empty inputs must be rejected.
			_, err := svc.Authenticate(tc.email, tc.password)
			assert.Error(t, err)
		})
	}
}
