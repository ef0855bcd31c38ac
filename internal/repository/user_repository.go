package repository

import (
	"context"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成。email重複はErrConflict。
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	//未認証ユーザーを認証コードで1件取得する。
	FindByVerificationCode(ctx context.Context, code string) (*model.User, error)

	//認証コードを差し替える。衝突はErrConflict（呼び出し側で再生成）。
	SetVerificationCode(ctx context.Context, userID int64, code string) error

	//is_verified=trueにして認証コードをNULLへ戻す。
	//既に認証済みだった場合はErrConflict（先勝ち）。
	MarkVerified(ctx context.Context, userID int64) error
}
