// internal/services/gate_test.go
package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestGate() *Gate {
	return NewGate([]string{"6520890849", "6720999592"}, "1234")
}

func TestResolveIdentityNumericMatchesConfiguredString(t *testing.T) {
	g := newTestGate()

	// Platform ids arrive as numbers; configured ids are strings. The
	// comparison must hold across representations.
	g.ResolveIdentity(int64(6520890849))

	assert.True(t, g.IsPrivileged())
	assert.Equal(t, EntryGranted, g.RequestAdminEntry())
}

func TestResolveIdentityFloatAndJSONNumber(t *testing.T) {
	g := newTestGate()
	g.ResolveIdentity(float64(6520890849))
	assert.True(t, g.IsPrivileged())

	g = newTestGate()
	g.ResolveIdentity(json.Number("6720999592"))
	assert.True(t, g.IsPrivileged())
}

func TestResolveIdentityAbsent(t *testing.T) {
	g := newTestGate()

	g.ResolveIdentity(nil)

	assert.False(t, g.IsPrivileged())
	assert.Equal(t, EntryNeedsSecret, g.RequestAdminEntry())
}

func TestResolveIdentityUnknownID(t *testing.T) {
	g := newTestGate()

	g.ResolveIdentity(int64(42))

	assert.False(t, g.IsPrivileged())
	assert.Equal(t, EntryNeedsSecret, g.RequestAdminEntry())
}

func TestSubmitSecretNoLockout(t *testing.T) {
	g := newTestGate()

	// A wrong submission must not block a following correct one.
	assert.Equal(t, EntryDenied, g.SubmitSecret("wrong"))
	assert.Equal(t, EntryDenied, g.SubmitSecret(""))
	assert.Equal(t, EntryGranted, g.SubmitSecret("1234"))
}

func TestSubmitSecretExactMatch(t *testing.T) {
	g := newTestGate()

	assert.Equal(t, EntryDenied, g.SubmitSecret("1234 "))
	assert.Equal(t, EntryDenied, g.SubmitSecret("12345"))
}

func TestCanonicalID(t *testing.T) {
	assert.Equal(t, "6520890849", canonicalID(int64(6520890849)))
	assert.Equal(t, "6520890849", canonicalID(float64(6520890849)))
	assert.Equal(t, "6520890849", canonicalID(json.Number("6520890849")))
	assert.Equal(t, "6520890849", canonicalID(" 6520890849 "))
	assert.Equal(t, "", canonicalID(nil))
	assert.Equal(t, "", canonicalID(struct{}{}))
}
