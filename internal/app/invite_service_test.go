package app

import (
	"errors"
	"testing"
	"time"
)

func TestInviteTokenRoundTrip(t *testing.T) {
	svc := NewInviteService("secret", "tractor", time.Hour)
	token, err := svc.GenerateToken("match-123", "user-a")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	matchID, err := svc.MatchIDFromToken(token)
	if err != nil {
		t.Fatalf("MatchIDFromToken: %v", err)
	}
	if matchID != "match-123" {
		t.Errorf("match id = %q, want %q", matchID, "match-123")
	}
}

func TestInviteTokenUnique(t *testing.T) {
	svc := NewInviteService("secret", "tractor", time.Hour)
	a, err := svc.GenerateToken("match-123", "user-a")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	b, err := svc.GenerateToken("match-123", "user-a")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if a == b {
		t.Error("two invites for the same match are identical")
	}
}

func TestInviteTokenRejected(t *testing.T) {
	svc := NewInviteService("secret", "tractor", time.Hour)
	token, err := svc.GenerateToken("match-123", "user-a")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name  string
		svc   *InviteService
		token string
	}{
		{"wrong secret", NewInviteService("other", "tractor", time.Hour), token},
		{"wrong issuer", NewInviteService("secret", "other", time.Hour), token},
		{"garbage", svc, "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.svc.MatchIDFromToken(tt.token); !errors.Is(err, ErrInvalidInvite) {
				t.Errorf("error = %v, want ErrInvalidInvite", err)
			}
		})
	}
}

func TestInviteTokenInputValidation(t *testing.T) {
	svc := NewInviteService("secret", "tractor", time.Hour)
	if _, err := svc.GenerateToken("", "user-a"); err == nil {
		t.Error("empty match id accepted")
	}
	if _, err := svc.GenerateToken("match-123", ""); err == nil {
		t.Error("empty user accepted")
	}
}
