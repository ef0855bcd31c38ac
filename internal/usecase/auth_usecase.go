package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/karimovsardorbek/online-market/internal/config"
	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

// accesstokenの有効期限
const accessTokenTTL = 15 * time.Minute

// refreshtokenの有効期限
const refreshTokenTTL = 30 * 24 * time.Hour

// コード衝突時の再生成上限
const maxCodeAttempts = 5

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, email string, password string, fullName string) error
	ValidateLogin(ctx context.Context, email string, password string) error
	ValidateVerify(ctx context.Context, code string) error
	ValidateResend(ctx context.Context, email string) error
}

// 認証コードの配送。失敗しても登録は失敗させない（fire-and-forget）。
type VerificationSender interface {
	SendVerificationCode(ctx context.Context, email string, code string) error
}

type UserDTO struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	IsSeller   bool   `json:"is_seller"`
	IsVerified bool   `json:"is_verified"`
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	IsSeller bool
}

type RegisterOutput struct {
	User UserDTO `json:"user"`
}

type LoginInput struct {
	Email    string
	Password string
}

// OASのTokenPair
type TokenPairOutput struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	rtRepo    repo.RefreshTokenRepository
	validator AuthValidator
	sender    VerificationSender
	logger    *zap.Logger
}

func NewAuthUsecase(
	cfg config.Config,
	users repo.UserRepository,
	rtRepo repo.RefreshTokenRepository,
	validator AuthValidator,
	sender VerificationSender,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		rtRepo:    rtRepo,
		validator: validator,
		sender:    sender,
		logger:    logger,
	}
}

// 会員登録。成功したら6桁コードを発行してメール配送を試みる。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, in.Email, in.Password, in.FullName); err != nil {
		return RegisterOutput{}, err
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(pwHash),
		FullName:     strings.TrimSpace(in.FullName),
		IsSeller:     in.IsSeller,
		IsVerified:   false,
	}

	if err := u.users.Create(ctx, user); err != nil {
		if err == repo.ErrConflict {
			return RegisterOutput{}, NewHTTPError(http.StatusConflict, "email already registered")
		}
		return RegisterOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//コード発行（衝突したら再生成）
	code, err := u.issueVerificationCode(ctx, user.ID)
	if err != nil {
		return RegisterOutput{}, err
	}

	u.dispatchCode(user.Email, code)

	return RegisterOutput{User: toUserDTO(user)}, nil
}

// 認証コードでの照合。照合はコードのみ（アカウント指定なし）なので
// コードのユニーク性が前提になる。
func (u *AuthUsecase) Verify(ctx context.Context, code string) (UserDTO, error) {
	if err := u.validator.ValidateVerify(ctx, code); err != nil {
		return UserDTO{}, err
	}

	user, err := u.users.FindByVerificationCode(ctx, strings.TrimSpace(code))
	if err == repo.ErrNotFound {
		return UserDTO{}, NewHTTPError(http.StatusNotFound, "invalid verification code")
	}
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if user.IsVerified {
		return UserDTO{}, NewHTTPError(http.StatusConflict, "already verified")
	}

	if err := u.users.MarkVerified(ctx, user.ID); err != nil {
		//同じコードで並行verifyされた場合、負けた側はここに来る
		if err == repo.ErrConflict {
			return UserDTO{}, NewHTTPError(http.StatusConflict, "already verified")
		}
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.IsVerified = true
	user.VerificationCode = nil
	return toUserDTO(user), nil
}

// コード再送。前のコードは破棄して新しいものに置き換える。
func (u *AuthUsecase) ResendVerification(ctx context.Context, email string) error {
	if err := u.validator.ValidateResend(ctx, email); err != nil {
		return err
	}

	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "no account with this email")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if user.IsVerified {
		return NewHTTPError(http.StatusConflict, "already verified")
	}

	code, err := u.issueVerificationCode(ctx, user.ID)
	if err != nil {
		return err
	}

	u.dispatchCode(user.Email, code)
	return nil
}

// ログイン。emailが無い場合とパスワード不一致は同じ401を返す
// （アカウントの存在を推測させない）。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (TokenPairOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return TokenPairOutput{}, err
	}

	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil || user == nil {
		return TokenPairOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return TokenPairOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	//未認証はログイン不可
	if !user.IsVerified {
		return TokenPairOutput{}, NewHTTPError(http.StatusForbidden, "email not verified")
	}

	access, err := u.issueAccessToken(user)
	if err != nil {
		return TokenPairOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	refresh, err := u.issueRefreshToken(ctx, user.ID, "")
	if err != nil {
		return TokenPairOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return TokenPairOutput{Access: access, Refresh: refresh}, nil
}

// refresh tokenの回転。used済みが来たらreplayとみなして全失効。
func (u *AuthUsecase) Refresh(ctx context.Context, refreshPlain string, userAgent string) (TokenPairOutput, error) {
	if strings.TrimSpace(refreshPlain) == "" {
		return TokenPairOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	rt, err := u.rtRepo.FindByTokenHash(ctx, hashToken(refreshPlain))
	if err != nil || rt == nil {
		return TokenPairOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//期限切れ
	if rt.ExpiresAt.Before(time.Now()) {
		_ = u.rtRepo.DeleteByID(ctx, rt.ID)
		return TokenPairOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//revoked
	if rt.RevokedAt != nil {
		return TokenPairOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//used済みが来たら replay → 全削除
	if rt.UsedAt != nil {
		_ = u.rtRepo.DeleteAllByUserID(ctx, rt.UserID)
		return TokenPairOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, rt.UserID)
	if err != nil || user == nil {
		return TokenPairOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//旧tokenをusedにする
	if err := u.rtRepo.MarkUsed(ctx, rt.ID, time.Now()); err != nil {
		_ = u.rtRepo.DeleteAllByUserID(ctx, rt.UserID)
		return TokenPairOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	access, err := u.issueAccessToken(user)
	if err != nil {
		return TokenPairOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	refresh, err := u.issueRefreshToken(ctx, user.ID, userAgent)
	if err != nil {
		return TokenPairOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return TokenPairOutput{Access: access, Refresh: refresh}, nil
}

func (u *AuthUsecase) Logout(ctx context.Context, refreshPlain string) error {
	if strings.TrimSpace(refreshPlain) == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	rt, err := u.rtRepo.FindByTokenHash(ctx, hashToken(refreshPlain))
	if err != nil || rt == nil {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.rtRepo.DeleteByID(ctx, rt.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	return toUserDTO(user), nil
}

// 6桁コードを発行して保存。unique違反は再生成でリトライ。
func (u *AuthUsecase) issueVerificationCode(ctx context.Context, userID int64) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := newVerificationCode()
		if err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "internal error")
		}

		err = u.users.SetVerificationCode(ctx, userID, code)
		if err == repo.ErrConflict {
			continue
		}
		if err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return code, nil
	}

	return "", NewHTTPError(http.StatusInternalServerError, "internal error")
}

// 配送は非同期。失敗はログに残すだけで登録は成功扱い。
func (u *AuthUsecase) dispatchCode(email string, code string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := u.sender.SendVerificationCode(ctx, email, code); err != nil {
			u.logger.Warn("verification code dispatch failed",
				zap.String("email", email),
				zap.Error(err),
			)
		}
	}()
}

// jwt発行
func (u *AuthUsecase) issueAccessToken(user *model.User) (string, error) {
	now := time.Now()
	exp := now.Add(accessTokenTTL)

	claims := jwt.MapClaims{
		"sub":    user.ID,
		"seller": user.IsSeller,
		"iat":    now.Unix(),
		"exp":    exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(u.cfg.JWTSecret))
}

// refresh token生成（平文を返してDBにはhashだけ保存）
func (u *AuthUsecase) issueRefreshToken(ctx context.Context, userID int64, userAgent string) (string, error) {
	plain, hash, err := newRandomTokenAndHash()
	if err != nil {
		return "", err
	}

	rt := &model.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: hash,
		UserAgent: userAgent,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}

	if err := u.rtRepo.Create(ctx, rt); err != nil {
		return "", err
	}
	return plain, nil
}

// 100000〜999999の一様乱数
func newVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func newRandomTokenAndHash() (plain string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}

	plain = base64.RawURLEncoding.EncodeToString(b)

	sum := sha256.Sum256([]byte(plain))
	hash = base64.RawURLEncoding.EncodeToString(sum[:])

	return plain, hash, nil
}

func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		IsSeller:   u.IsSeller,
		IsVerified: u.IsVerified,
	}
}
