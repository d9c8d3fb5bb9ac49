package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/config"
	"hotelbooking/internal/repository"
)

const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// PasswordVerifier decides whether a supplied password matches the stored one
// and prepares passwords for storage.
type PasswordVerifier interface {
	Verify(stored, supplied string) bool
	Hash(password string) (string, error)
}

// plainVerifier compares verbatim and stores passwords as given.
type plainVerifier struct{}

func (plainVerifier) Verify(stored, supplied string) bool { return stored == supplied }

func (plainVerifier) Hash(password string) (string, error) { return password, nil }

type bcryptVerifier struct {
	cost int
}

func (v bcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

func (v bcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}
	return string(hashed), nil
}

// NewPasswordVerifier returns the verifier for scheme. Unknown schemes fall
// back to plain comparison.
func NewPasswordVerifier(scheme string) PasswordVerifier {
	if scheme == SchemeBcrypt {
		return bcryptVerifier{cost: bcrypt.DefaultCost}
	}
	return plainVerifier{}
}

// LoginUser is the public part of a user returned on successful login.
type LoginUser struct {
	ID    int64   `json:"id"`
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginUser, error)
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

type authService struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	log      logrus.FieldLogger
}

func NewAuthService(userRepo repository.UserRepository, verifier PasswordVerifier, cfg config.Auth, log logrus.FieldLogger) AuthService {
	secret := []byte(cfg.JWTSecretKey)
	if len(secret) == 0 {
		secret = randomSecret()
		log.Warn("JWT_SECRET_KEY is empty, tokens will not survive a restart")
	}

	return &authService{
		userRepo: userRepo,
		verifier: verifier,
		secret:   secret,
		ttl:      cfg.TokenDuration,
		now:      time.Now,
		log:      log.WithField("component", "auth"),
	}
}

func randomSecret() []byte {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return []byte(hex.EncodeToString(buf))
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginUser, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindNotFound, MsgEmailNotFound, err)
		}
		s.log.WithError(err).Error("login lookup")
		return nil, newError(KindServerError, MsgServerError, err)
	}

	if user.Password == nil || !s.verifier.Verify(*user.Password, password) {
		s.log.WithField("user_id", user.ID).Info("wrong password")
		return nil, newError(KindUnauthorized, MsgWrongPassword, nil)
	}

	return &LoginUser{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func (s *authService) IssueToken(userID int64) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", newError(KindServerError, MsgServerError, fmt.Errorf("ошибка подписи токена: %w", err))
	}

	return token, nil
}

// ParseToken returns the user id carried by a token issued by IssueToken.
func (s *authService) ParseToken(token string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return 0, newError(KindUnauthorized, MsgInvalidToken, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, newError(KindUnauthorized, MsgInvalidToken, err)
	}

	return id, nil
}
