package auth

import (
	"errors"
	"testing"
)

func TestIssueAndParse(t *testing.T) {
	t.Run("access_token_round_trip", func(t *testing.T) {
		token, err := IssueAccessToken(42)
		if err != nil {
			t.Fatalf("issue failed: %v", err)
		}

		claims, err := Parse(token, TypeAccess)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if claims.UserID != 42 {
			t.Errorf("expected user 42, got %d", claims.UserID)
		}
		if claims.TokenType != TypeAccess {
			t.Errorf("expected access type, got %q", claims.TokenType)
		}
	})

	t.Run("refresh_token_rejected_as_access", func(t *testing.T) {
		token, err := IssueRefreshToken(42)
		if err != nil {
			t.Fatalf("issue failed: %v", err)
		}

		if _, err := Parse(token, TypeAccess); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("expected ErrTokenInvalid for type mismatch, got %v", err)
		}
	})

	t.Run("empty_token", func(t *testing.T) {
		if _, err := Parse("", TypeAccess); !errors.Is(err, ErrTokenMissing) {
			t.Errorf("expected ErrTokenMissing, got %v", err)
		}
	})

	t.Run("garbage_token", func(t *testing.T) {
		if _, err := Parse("not.a.jwt", TypeAccess); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("expected ErrTokenInvalid, got %v", err)
		}
	})
}

func TestHashToken(t *testing.T) {
	h := HashToken("some-token")
	if len(h) != 64 {
		t.Errorf("expected 64-char hex digest, got %d chars", len(h))
	}
	if h != HashToken("some-token") {
		t.Error("digest must be deterministic")
	}
	if h == HashToken("other-token") {
		t.Error("different tokens must not collide")
	}
}
