package get_quote

import (
	"context"

	getQuote "github.com/m04kA/SmartWash-BookingService/internal/usecase/get_quote"
)

type GetQuoteUseCase interface {
	Execute(ctx context.Context, req *getQuote.Request) (*getQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
