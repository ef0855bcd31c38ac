package validator

import (
	"context"
	"net/http"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/karimovsardorbek/online-market/internal/usecase"
)

type authValidator struct {
	v *playground.Validate
}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{v: playground.New()}
}

// 会員登録の入力を検証
func (a *authValidator) ValidateRegister(ctx context.Context, email string, password string, fullName string) error {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	if err := a.v.Var(email, "email"); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	// パスワード最低文字数（8）
	if len(password) < 8 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password too short")
	}

	if strings.TrimSpace(fullName) == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "full_name is required")
	}
	if len(fullName) > 100 {
		return usecase.NewHTTPError(http.StatusBadRequest, "full_name too long")
	}

	return nil
}

// ログインの入力を検証
func (a *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	if err := a.v.Var(email, "email"); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	return nil
}

// 6桁の数字のみ
func (a *authValidator) ValidateVerify(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)

	if err := a.v.Var(code, "required,len=6,numeric"); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid code")
	}
	return nil
}

func (a *authValidator) ValidateResend(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	if email == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if err := a.v.Var(email, "email"); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	return nil
}
