package pgstore

import (
	"context"

	"github.com/m04kA/SmartWash-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// TransactionManager интерфейс для управления транзакциями (pkg/txmanager)
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}
