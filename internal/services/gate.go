// internal/services/gate.go
package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"
)

type EntryDecision string

const (
	EntryGranted     EntryDecision = "granted"
	EntryNeedsSecret EntryDecision = "needs_secret"
	EntryDenied      EntryDecision = "denied"
)

// Gate decides whether a session may open the admin surface. Two tiers: a
// platform-asserted identity on the configured list grants entry outright;
// everyone else may submit the shared secret. The secret is compared in plain
// text with no lockout — this is deterrence for a low-stakes storefront, not
// security.
type Gate struct {
	mu            sync.Mutex
	privilegedIDs map[string]struct{}
	secret        string
	isPrivileged  bool
}

func NewGate(privilegedIDs []string, secret string) *Gate {
	ids := make(map[string]struct{}, len(privilegedIDs))
	for _, id := range privilegedIDs {
		if canonical := canonicalID(id); canonical != "" {
			ids[canonical] = struct{}{}
		}
	}
	return &Gate{
		privilegedIDs: ids,
		secret:        secret,
	}
}

// ResolveIdentity marks the session privileged when the external user id is
// on the configured list. Identity values arrive as numbers from the platform
// and as strings from configuration; both sides are normalized to a canonical
// string so the comparison cannot silently fail across representations.
func (g *Gate) ResolveIdentity(externalUserID interface{}) {
	id := canonicalID(externalUserID)
	if id == "" {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.privilegedIDs[id]; ok {
		g.isPrivileged = true
	}
}

// RequestAdminEntry returns Granted for a privileged session and NeedsSecret
// otherwise, signalling the caller to prompt for the shared secret.
func (g *Gate) RequestAdminEntry() EntryDecision {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.isPrivileged {
		return EntryGranted
	}
	return EntryNeedsSecret
}

// SubmitSecret compares the submitted value against the configured secret.
// A mismatch returns Denied and leaves the gate unchanged; the caller may
// retry indefinitely.
func (g *Gate) SubmitSecret(secret string) EntryDecision {
	if secret != g.secret {
		return EntryDenied
	}
	return EntryGranted
}

// IsPrivileged reports the identity-derived state.
func (g *Gate) IsPrivileged() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPrivileged
}

// canonicalID normalizes an external user id to its decimal string form.
// Telegram ids are int64-sized, so float64 values coming out of generic JSON
// decoding are formatted without an exponent.
func canonicalID(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
