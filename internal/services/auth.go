package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues role tokens. There is one shared admin passphrase; the
// attendee role needs no credential at all, only a token carrying the role.
type AuthService struct {
	passphraseHash []byte
	jwtSecret      []byte
}

func NewAuthService(adminPassphrase, jwtSecret string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{passphraseHash: hash, jwtSecret: []byte(jwtSecret)}, nil
}

// AdminLogin exchanges the shared passphrase for an admin token.
func (s *AuthService) AdminLogin(passphrase string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passphraseHash, []byte(passphrase)); err != nil {
		return "", errors.New("invalid passphrase")
	}
	return s.generateToken("admin")
}

// AttendeeToken issues an unauthenticated attendee-role token.
func (s *AuthService) AttendeeToken() (string, error) {
	return s.generateToken("attendee")
}

func (s *AuthService) generateToken(role string) (string, error) {
	claims := jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken returns the role carried by a token.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	role, ok := claims["role"].(string)
	if !ok || (role != "admin" && role != "attendee") {
		return "", errors.New("invalid role in token")
	}
	return role, nil
}
