package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"barber-booking-api/internal/domain"
)

func newTestJWTer() *JWTer {
	return &JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "barber-booking-api",
		Audience: "barber-booking-clients",
		TTL:      time.Hour,
	}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer()
	token, exp, err := j.Issue(7, domain.CategoryAdmin)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UID)
	require.Equal(t, domain.CategoryAdmin, claims.Category)
	require.Equal(t, j.Issuer, claims.Issuer)
}

func TestParseExpiredNoGrace(t *testing.T) {
	j := newTestJWTer()
	j.TTL = -time.Second // 签出来就已过期
	token, _, err := j.Issue(1, domain.CategoryStaff)
	require.NoError(t, err)

	_, err = j.Parse(token)
	require.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	j := newTestJWTer()
	token, _, err := j.Issue(1, domain.CategoryStaff)
	require.NoError(t, err)

	other := newTestJWTer()
	other.Secret = []byte("another-secret")
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseWrongIssuer(t *testing.T) {
	j := newTestJWTer()
	token, _, err := j.Issue(1, domain.CategoryStaff)
	require.NoError(t, err)

	other := newTestJWTer()
	other.Issuer = "someone-else"
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseWrongAudience(t *testing.T) {
	j := newTestJWTer()
	token, _, err := j.Issue(1, domain.CategoryStaff)
	require.NoError(t, err)

	other := newTestJWTer()
	other.Audience = "other-audience"
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	j := newTestJWTer()
	_, err := j.Parse("not-a-token")
	require.Error(t, err)
}
