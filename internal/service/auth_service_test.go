package service_test

import (
	"errors"
	"testing"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/apperr"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/repository"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/service"
	"github.com/Sidra-Yasmeen/Inventory-App/pkg/jwt"

	"gorm.io/gorm"
)

func newAuth(db *gorm.DB) service.AuthService {
	return service.NewAuthService(repository.NewUserRepo(db))
}

func TestRegisterHashesPassword(t *testing.T) {
	db := memdb(t)
	auth := newAuth(db)

	user, err := auth.Register("Alice", "alice@example.com", "secret1", "")
	if err != nil {
		t.Fatal(err)
	}
	if user.Role != model.RoleStaff {
		t.Fatalf("want default role staff, got %s", user.Role)
	}
	if user.Password == "secret1" {
		t.Fatal("password stored in plaintext")
	}
	if !user.CheckPassword("secret1") {
		t.Fatal("hash does not verify")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := memdb(t)
	auth := newAuth(db)

	if _, err := auth.Register("Alice", "alice@example.com", "secret1", ""); err != nil {
		t.Fatal(err)
	}
	_, err := auth.Register("Other", "alice@example.com", "secret2", "")
	if !errors.Is(err, apperr.ErrDuplicateKey) {
		t.Fatalf("want ErrDuplicateKey, got %v", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := memdb(t)
	auth := newAuth(db)

	_, err := auth.Register("Alice", "alice@example.com", "secret1", "superuser")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	db := memdb(t)
	auth := newAuth(db)

	if _, err := auth.Register("Alice", "alice@example.com", "secret1", model.RoleAdmin); err != nil {
		t.Fatal(err)
	}

	resp, err := auth.Login("alice@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Fatal("no token issued")
	}
	claims, err := jwt.ValidateToken(resp.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Role != string(model.RoleAdmin) || claims.Email != "alice@example.com" {
		t.Fatalf("bad claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := memdb(t)
	auth := newAuth(db)

	if _, err := auth.Register("Alice", "alice@example.com", "secret1", ""); err != nil {
		t.Fatal(err)
	}

	if _, err := auth.Login("alice@example.com", "wrong"); err != service.ErrInvalidCredentials {
		t.Fatalf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	// Unknown email answers the same as a wrong password
	if _, err := auth.Login("nobody@example.com", "secret1"); err != service.ErrInvalidCredentials {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	db := memdb(t)
	auth := newAuth(db)

	if _, err := auth.Register("Alice", "alice@example.com", "secret1", ""); err != nil {
		t.Fatal(err)
	}

	if err := auth.ResetPassword("alice@example.com", "wrong", "newsecret"); err != service.ErrWrongPassword {
		t.Fatalf("want ErrWrongPassword, got %v", err)
	}

	if err := auth.ResetPassword("alice@example.com", "secret1", "newsecret"); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Login("alice@example.com", "newsecret"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := auth.Login("alice@example.com", "secret1"); err != service.ErrInvalidCredentials {
		t.Fatalf("old password still valid: %v", err)
	}
}
