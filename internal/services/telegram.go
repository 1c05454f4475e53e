// internal/services/telegram.go
package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"
)

var ErrInvalidInitData = errors.New("invalid telegram init data")

// TelegramUser is the identity record the mini-app host asserts for the
// acting user.
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// VerifyInitData checks the Telegram WebApp initData signature and returns
// the embedded user. The scheme is fixed by the platform: the data-check
// string is every key=value pair except hash, sorted and newline-joined, and
// the expected hash is HMAC-SHA256 of it under a key derived from the bot
// token with the constant "WebAppData".
func VerifyInitData(initData, botToken string) (*TelegramUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, ErrInvalidInitData
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, ErrInvalidInitData
	}
	values.Del("hash")

	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	wantHash := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(wantHash), []byte(gotHash)) {
		return nil, ErrInvalidInitData
	}

	userJSON := values.Get("user")
	if userJSON == "" {
		return nil, ErrInvalidInitData
	}

	var user TelegramUser
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, ErrInvalidInitData
	}
	return &user, nil
}
