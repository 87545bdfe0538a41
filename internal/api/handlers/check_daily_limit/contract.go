package check_daily_limit

import (
	"context"

	checkDailyLimit "github.com/pradita-lab/Lab-BookingService/internal/usecase/check_daily_limit"
)

type CheckDailyLimitUseCase interface {
	Execute(ctx context.Context, req *checkDailyLimit.Request) (*checkDailyLimit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
