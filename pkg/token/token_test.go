package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func fixed(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestIssueParse(t *testing.T) {
	now := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)
	iss, err := NewIssuer("secret", "devicehub", time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	iss.WithClock(fixed(now))

	raw, issued, err := iss.Issue(7, "lab@qsafe.io", "calibration_lab_admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := iss.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != 7 {
		t.Fatalf("expected user 7, got %d (%v)", id, err)
	}
	if claims.Role != "calibration_lab_admin" || claims.Email != "lab@qsafe.io" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" || claims.ID != issued.ID {
		t.Fatalf("jti mismatch: %q vs %q", claims.ID, issued.ID)
	}
	if !claims.Expiry().Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %v", claims.Expiry())
	}
}

func TestParse_Expired(t *testing.T) {
	now := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)
	iss, _ := NewIssuer("secret", "devicehub", time.Minute)
	iss.WithClock(fixed(now))
	raw, _, err := iss.Issue(1, "john@example.com", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	iss.WithClock(fixed(now.Add(2 * time.Minute)))
	if _, err := iss.Parse(raw); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestParse_WrongSecretOrIssuer(t *testing.T) {
	a, _ := NewIssuer("secret-a", "devicehub", time.Hour)
	b, _ := NewIssuer("secret-b", "devicehub", time.Hour)
	c, _ := NewIssuer("secret-a", "someone-else", time.Hour)

	raw, _, err := a.Issue(1, "john@example.com", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := b.Parse(raw); !errors.Is(err, ErrInvalid) {
		t.Fatalf("wrong secret accepted: %v", err)
	}
	if _, err := c.Parse(raw); !errors.Is(err, ErrInvalid) {
		t.Fatalf("wrong issuer accepted: %v", err)
	}
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	iss, _ := NewIssuer("secret", "", time.Hour)
	claims := jwt.MapClaims{"sub": "1", "jti": "x", "exp": time.Now().Add(time.Hour).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := iss.Parse(raw); !errors.Is(err, ErrInvalid) {
		t.Fatalf("HS512 token accepted: %v", err)
	}
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	if _, err := NewIssuer("", "devicehub", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
