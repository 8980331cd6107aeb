package services

import "testing"

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	s, err := NewAuthService("workshop-2026", "test-secret")
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return s
}

func TestAdminLoginRoundTrip(t *testing.T) {
	s := newTestAuth(t)

	token, err := s.AdminLogin("workshop-2026")
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	role, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if role != "admin" {
		t.Fatalf("role = %q, want admin", role)
	}
}

func TestAdminLoginRejectsWrongPassphrase(t *testing.T) {
	s := newTestAuth(t)

	if _, err := s.AdminLogin("guess"); err == nil {
		t.Fatal("wrong passphrase must be rejected")
	}
}

func TestAttendeeTokenCarriesRole(t *testing.T) {
	s := newTestAuth(t)

	token, err := s.AttendeeToken()
	if err != nil {
		t.Fatalf("AttendeeToken: %v", err)
	}
	role, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if role != "attendee" {
		t.Fatalf("role = %q, want attendee", role)
	}
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	s := newTestAuth(t)
	other, err := NewAuthService("workshop-2026", "another-secret")
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	token, err := other.AttendeeToken()
	if err != nil {
		t.Fatalf("AttendeeToken: %v", err)
	}
	if _, err := s.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret must be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	s := newTestAuth(t)

	if _, err := s.ValidateToken("not.a.token"); err == nil {
		t.Fatal("malformed token must be rejected")
	}
}
