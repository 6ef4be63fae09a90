package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Josef-ino/poksys/pkg/apperror"
	"github.com/Josef-ino/poksys/pkg/utils"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc, err := NewAuthService(jwtManager, "uzivatel", "poksys1")
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}
	return svc
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	output, err := svc.Login(ctx, &LoginInput{Username: "uzivatel", Password: "poksys1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("login must issue both tokens")
	}
	if output.Username != "uzivatel" {
		t.Errorf("unexpected username %q", output.Username)
	}

	for _, bad := range []LoginInput{
		{Username: "uzivatel", Password: "wrong"},
		{Username: "someone", Password: "poksys1"},
	} {
		input := bad
		if _, err := svc.Login(ctx, &input); !errors.Is(err, apperror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for %q/%q, got %v", bad.Username, bad.Password, err)
		}
	}
}

func TestAuthServiceRefresh(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	output, err := svc.Login(ctx, &LoginInput{Username: "uzivatel", Password: "poksys1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, output.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("refresh must issue a new access token")
	}

	if _, err := svc.Refresh(ctx, "not-a-token"); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}

	// A token issued for a different subject is rejected.
	otherManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	foreign, err := otherManager.GenerateRefreshToken("vetrelec")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}
	if _, err := svc.Refresh(ctx, foreign); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Errorf("foreign subject must not refresh, got %v", err)
	}
}

func TestSystemServiceReset(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)
	cartSvc := NewCartService(st)
	svc := NewSystemService(st, cartSvc)
	ctx := context.Background()

	if _, err := cartSvc.AddItem(ctx, &AddItemInput{Name: "Káva", Count: 2}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	products, err := st.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("reset must clear the catalog, got %d products", len(products))
	}
	if got := cartSvc.Get(ctx).ItemCount; got != 0 {
		t.Errorf("reset must clear the purchase list, got %d items", got)
	}
}
