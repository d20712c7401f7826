package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Maheswari-BaskaranS/MediCare-App/internal/config"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/models"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/passhash"
	"github.com/Maheswari-BaskaranS/MediCare-App/internal/repository"
)

// Local sessions are long-lived; logging out just deletes the session file.
const sessionTTL = 30 * 24 * time.Hour

type Services struct {
	Auth    *AuthService
	Tracker *TrackerService
}

func NewServices(repo repository.Repository, cfg config.Config) *Services {
	return &Services{
		Auth:    &AuthService{repo: repo, jwtSecret: []byte(cfg.JWTSecret)},
		Tracker: NewTracker(repo),
	}
}

// AuthService manages the local account registry and issues the signed
// session tokens the CLI keeps in its session file.
type AuthService struct {
	repo      repository.Repository
	jwtSecret []byte
}

func (a *AuthService) Register(ctx context.Context, email, name, password string) (models.User, error) {
	if email == "" || name == "" || password == "" {
		return models.User{}, errors.New("email, name and password required")
	}
	phc, err := passhash.Hash(password)
	if err != nil {
		return models.User{}, err
	}
	return a.repo.CreateUser(ctx, email, name, []byte(phc))
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, hash, err := a.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	ok, err := passhash.Verify(string(hash), password)
	if err != nil || !ok {
		return "", errors.New("invalid credentials")
	}
	claims := jwt.MapClaims{
		"sub": u.ID,
		"exp": time.Now().Add(sessionTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.jwtSecret)
}

func (a *AuthService) ParseToken(_ context.Context, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid session token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("invalid token subject")
	}
	return sub, nil
}

func (a *AuthService) GetUser(ctx context.Context, id string) (models.User, error) {
	return a.repo.GetUser(ctx, id)
}
