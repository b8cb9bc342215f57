package auth

import "context"

var _ Checker = (*SessionChecker)(nil)
var _ Checker = (*TestChecker)(nil)

// Checker resolves a session token to the user it belongs to.
type Checker interface {
	UserIDForToken(ctx context.Context, token string) (int, bool, error)
}

type SessionChecker struct {
	service *Service
}

func NewSessionChecker(service *Service) *SessionChecker {
	return &SessionChecker{
		service: service,
	}
}

func (c *SessionChecker) UserIDForToken(ctx context.Context, token string) (int, bool, error) {
	session, err := c.service.Session(ctx, token)
	if err != nil {
		return 0, false, err
	}
	if session == nil {
		return 0, false, nil
	}
	return session.UserID, true, nil
}

// TestChecker is an in-memory Checker for dev and tests.
type TestChecker struct {
	Sessions map[string]int
}

func NewTestChecker() *TestChecker {
	return &TestChecker{
		Sessions: map[string]int{},
	}
}

func (c *TestChecker) UserIDForToken(_ context.Context, token string) (int, bool, error) {
	userID, ok := c.Sessions[token]
	return userID, ok, nil
}
