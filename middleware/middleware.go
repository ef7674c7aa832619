package middleware

import (
	"crypto/rand"
	"fmt"
)

type Middleware struct {
	csrfKey        []byte
	secure         bool
	trustedOrigins []string
}

// NewMiddleware creates the middleware with a random CSRF key. The CSRF
// cookie is only marked secure if secure is set.
func NewMiddleware(secure bool, trustedOrigins ...string) *Middleware {
	csrfKey := make([]byte, 32)
	n, err := rand.Read(csrfKey)
	if err != nil {
		panic(err)
	}
	if n != 32 {
		panic("unable to read 32 bytes for CSRF key")
	}

	return &Middleware{
		csrfKey:        csrfKey,
		secure:         secure,
		trustedOrigins: trustedOrigins,
	}
}

// DefaultTrustedOrigins are the local development origins for port.
func DefaultTrustedOrigins(port string) []string {
	return []string{fmt.Sprintf("localhost:%s", port), fmt.Sprintf("127.0.0.1:%s", port)}
}
