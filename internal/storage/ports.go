package storage

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	ListBy(ctx context.Context, column string, value any, order string, limit, offset int, dest any) error
	DeleteBy(ctx context.Context, column string, value any, model any) (int64, error)
}
