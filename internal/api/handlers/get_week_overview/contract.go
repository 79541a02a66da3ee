package get_week_overview

import (
	"context"

	getWeekOverview "github.com/m04kA/NSS-ScheduleService/internal/usecase/get_week_overview"
)

type GetWeekOverviewUseCase interface {
	Execute(ctx context.Context, req *getWeekOverview.Request) (*getWeekOverview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
