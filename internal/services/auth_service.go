// internal/services/auth_service.go
package services

import (
	"encoding/json"
	"fmt"

	"github.com/medlavka/storefront/internal/config"
	"github.com/medlavka/storefront/internal/utils"
)

// AuthService wraps the Gate with session issuance: a Granted decision turns
// into a signed admin token the client presents on admin routes for the rest
// of its session. There is no revocation; the token simply expires.
type AuthService struct {
	cfg *config.Config
}

type TelegramLoginRequest struct {
	// InitData is the raw signed payload from the mini-app host. Verified
	// against the bot token when one is configured.
	InitData string `json:"init_data"`
	// UserID is the fallback identity for hosts that do not forward initData.
	UserID json.Number `json:"user_id,omitempty"`
}

type PasswordLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Decision EntryDecision `json:"decision"`
	Token    string        `json:"token,omitempty"`
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

func (s *AuthService) newGate() *Gate {
	return NewGate(s.cfg.Admin.PrivilegedIDs, s.cfg.Admin.Password)
}

// ResolveTelegram derives the session's admin entry decision from the
// platform-asserted identity. An absent or unrecognized identity is not an
// error; it just means the shared secret is required.
func (s *AuthService) ResolveTelegram(req *TelegramLoginRequest) (*LoginResult, error) {
	var identity interface{}

	if req.InitData != "" && s.cfg.Telegram.BotToken != "" {
		user, err := VerifyInitData(req.InitData, s.cfg.Telegram.BotToken)
		if err != nil {
			return nil, err
		}
		identity = user.ID
	} else if req.UserID != "" {
		identity = req.UserID
	}

	gate := s.newGate()
	gate.ResolveIdentity(identity)

	if gate.RequestAdminEntry() != EntryGranted {
		return &LoginResult{Decision: EntryNeedsSecret}, nil
	}

	token, err := utils.GenerateAdminJWT(canonicalID(identity), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue admin token: %w", err)
	}
	return &LoginResult{Decision: EntryGranted, Token: token}, nil
}

// SubmitSecret runs the second tier of the gate. Denied leaves the caller
// free to retry; there is no lockout.
func (s *AuthService) SubmitSecret(req *PasswordLoginRequest) (*LoginResult, error) {
	gate := s.newGate()

	if gate.SubmitSecret(req.Password) != EntryGranted {
		return &LoginResult{Decision: EntryDenied}, nil
	}

	token, err := utils.GenerateAdminJWT("shared-secret", s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue admin token: %w", err)
	}
	return &LoginResult{Decision: EntryGranted, Token: token}, nil
}
