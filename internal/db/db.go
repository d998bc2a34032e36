package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// PostgresDB is a thin column-equality oriented wrapper around gorm. Callers
// pass snake_case column names; they are interpolated into the query, so they
// must never come from user input.
type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	if err := p.DB.AutoMigrate(tbl...); err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}
	return nil
}

func (p *PostgresDB) Insert(ctx context.Context, record any) error {
	if err := p.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// ListBy fetches records matching column = value, ordered and paginated. An
// empty column selects the whole table.
func (p *PostgresDB) ListBy(ctx context.Context, column string, value any, order string, limit, offset int, dest any) error {
	tx := p.DB.WithContext(ctx)
	if column != "" {
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}

	tx = tx.Order(order).Limit(limit).Offset(offset).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// DeleteBy removes records matching column = value and reports how many rows
// were affected.
func (p *PostgresDB) DeleteBy(ctx context.Context, column string, value any, model any) (int64, error) {
	tx := p.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}
