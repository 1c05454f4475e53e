// internal/services/telegram_test.go
package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "12345:test-token"

// signInitData builds a query string signed the way the platform signs it.
func signInitData(botToken string, fields map[string]string) string {
	pairs := make([]string, 0, len(fields))
	for key, value := range fields {
		pairs = append(pairs, key+"="+value)
	}
	sort.Strings(pairs)

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))

	values := url.Values{}
	for key, value := range fields {
		values.Set(key, value)
	}
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func TestVerifyInitDataValid(t *testing.T) {
	initData := signInitData(testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":6520890849,"first_name":"Анна","username":"anna"}`,
	})

	user, err := VerifyInitData(initData, testBotToken)

	require.NoError(t, err)
	assert.Equal(t, int64(6520890849), user.ID)
	assert.Equal(t, "Анна", user.FirstName)
	assert.Equal(t, "anna", user.Username)
}

func TestVerifyInitDataTamperedField(t *testing.T) {
	initData := signInitData(testBotToken, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":42,"first_name":"x"}`,
	})
	tampered := strings.Replace(initData, "auth_date=1700000000", "auth_date=1700000001", 1)

	_, err := VerifyInitData(tampered, testBotToken)

	assert.ErrorIs(t, err, ErrInvalidInitData)
}

func TestVerifyInitDataWrongToken(t *testing.T) {
	initData := signInitData("99999:other-token", map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":42,"first_name":"x"}`,
	})

	_, err := VerifyInitData(initData, testBotToken)

	assert.ErrorIs(t, err, ErrInvalidInitData)
}

func TestVerifyInitDataMissingHash(t *testing.T) {
	_, err := VerifyInitData("auth_date=1700000000", testBotToken)

	assert.ErrorIs(t, err, ErrInvalidInitData)
}

func TestVerifyInitDataMissingUser(t *testing.T) {
	initData := signInitData(testBotToken, map[string]string{
		"auth_date": "1700000000",
	})

	_, err := VerifyInitData(initData, testBotToken)

	assert.ErrorIs(t, err, ErrInvalidInitData)
}
