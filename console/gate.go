package console

import (
	"context"
	"errors"

	"permit-service-api/client"
)

// GateOutcome is the result of the session check performed on entry to any
// admin view.
type GateOutcome int

const (
	// GateLoginRequired: no token, or the backend explicitly rejected the
	// token. The session has been cleared.
	GateLoginRequired GateOutcome = iota
	// GateAuthenticated: the token was accepted and the cached identity
	// refreshed from the server's response.
	GateAuthenticated
	// GateOffline: the verification call failed on connectivity and the
	// cached identity is being trusted (StrictVerify disabled only).
	GateOffline
)

// VerifySession probes the backend with the held token. With StrictVerify
// disabled (the default) a connectivity failure is tolerated by trusting
// the cached identity — availability over strict correctness; enabling it
// forces re-login whenever verification cannot complete.
func (c *Controller) VerifySession(ctx context.Context) (GateOutcome, error) {
	session := c.api.Session()

	if !session.Authenticated() {
		return GateLoginRequired, nil
	}

	profile, err := c.api.GetProfile(ctx)
	if err == nil {
		session.UpdateIdentity(client.Identity{
			ID:          profile.ID,
			Username:    profile.Username,
			Email:       profile.Email,
			NamaLengkap: profile.NamaLengkap,
			Role:        profile.Role,
		})
		return GateAuthenticated, nil
	}

	if errors.Is(err, client.ErrConnectivity) {
		if c.StrictVerify || session.Identity() == nil {
			session.Clear()
			return GateLoginRequired, err
		}
		return GateOffline, nil
	}

	// Explicit rejection: the token is invalid or expired.
	session.Clear()
	return GateLoginRequired, err
}
