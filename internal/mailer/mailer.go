package mailer

import (
	"context"

	"go.uber.org/zap"
)

// 実配送は持たない。コードをログに出すだけのスタブ実装。
// SMTP等に差し替えるときはusecase.VerificationSenderを満たせばよい。
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendVerificationCode(ctx context.Context, email string, code string) error {
	s.logger.Info("sending verification code",
		zap.String("email", email),
		zap.String("code", code),
	)
	return nil
}
