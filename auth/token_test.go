package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	actor := Actor{ID: uuid.New(), Email: "[email protected]", Name: "Admin"}

	token, err := issuer.Issue(actor)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	got, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got != actor {
		t.Errorf("Verify() = %+v, want %+v", got, actor)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	token, err := issuer.Issue(Actor{ID: uuid.New(), Email: "[email protected]"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Error("Verify() accepted a token signed with a different secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(Actor{ID: uuid.New(), Email: "[email protected]"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := issuer.Verify(token); err == nil {
		t.Error("Verify() accepted an expired token")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.Verify("not-a-token"); err == nil {
		t.Error("Verify() accepted garbage input")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword() rejected the right password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() accepted the wrong password")
	}
}
