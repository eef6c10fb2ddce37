package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
)

const DefaultTokenTTL = 12 * time.Hour

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
	ttl    time.Duration
}

func New(ttl time.Duration) (port.TokenService, error) {
	if ttl <= 0 {
		return nil, domain.ErrTokenDuration
	}
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	s := PasetoToken{
		parser: &parser,
		key:    &key,
		ttl:    ttl,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(user *domain.User) (string, error) {
	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))

	payload := port.TokenPayload{UserID: user.ID, Role: user.Role}
	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
