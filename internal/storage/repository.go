package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/timesheet/internal/model"
)

var (
	ErrNotFound     = errors.New("storage: not found")
	ErrInvalidValue = errors.New("storage: invalid field value")
	ErrInvalidDay   = errors.New("storage: day is not a dd/mm/yy date")
)

// Repository is the minimal store contract the rest of the application
// depends on. Updates go through UpdateField so the editable-column set
// stays closed.
type Repository interface {
	Insert(ctx context.Context, in model.Record) error
	Get(ctx context.Context, id string) (model.Record, error)
	UpdateField(ctx context.Context, id string, field model.Field, value string) error
	Delete(ctx context.Context, id string) error
	ListByDay(ctx context.Context, day string) ([]model.Record, error)
	ListByDayRange(ctx context.Context, fromDay, toDay string) ([]model.Record, error)
}
