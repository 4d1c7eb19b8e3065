package unsub

import "time"

// IManager issues and verifies signed unsubscribe tokens. The token binds an
// unsubscribe link to one email address so a link cannot be replayed against
// another subscriber.
type IManager interface {
	Generate(email string) (string, error)
	Verify(token string) (string, error)
}

// New creates a token manager with an HS256 secret.
func New(secretKey string, ttl time.Duration) IManager {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &managerImpl{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}
