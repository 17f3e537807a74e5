package kv

import "errors"

var (
	// ErrRead возвращается при ошибке чтения из хранилища
	ErrRead = errors.New("kv.store: read failed")

	// ErrWrite возвращается при ошибке записи в хранилище
	ErrWrite = errors.New("kv.store: write failed")

	// ErrTransaction возвращается при ошибке транзакции (begin, commit, конфликт)
	ErrTransaction = errors.New("kv.store: transaction failed")
)
