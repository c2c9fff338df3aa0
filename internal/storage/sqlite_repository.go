package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/timesheet/internal/clock"
	"github.com/sandeepkv93/timesheet/internal/model"
)

// sortableDayExpr rebuilds a "yymmdd" key from the stored dd/mm/yy text so
// range comparison and ordering follow calendar order instead of the
// lexicographic order of the raw column.
const sortableDayExpr = `substr(day, 7, 2) || substr(day, 4, 2) || substr(day, 1, 2)`

// fieldColumns is the closed mapping from editable fields to columns.
// Column names never come from caller input.
var fieldColumns = map[model.Field]string{
	model.FieldStart:       "start_time",
	model.FieldEnd:         "end_time",
	model.FieldDescription: "description",
	model.FieldPosted:      "posted",
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Insert(ctx context.Context, in model.Record) error {
	if err := in.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (id, day, start_time, end_time, description, posted)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.ID, in.Day, in.Start, in.End, in.Description, boolInt(in.Posted),
	)
	return err
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (model.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, day, start_time, end_time, description, posted
		FROM records WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Record{}, ErrNotFound
		}
		return model.Record{}, err
	}
	return rec, nil
}

// UpdateField writes one editable column of one record. The field is mapped
// through the fixed column table; anything outside the enumerated set fails
// closed with model.ErrInvalidField before any SQL is assembled.
func (r *SQLiteRepository) UpdateField(ctx context.Context, id string, field model.Field, value string) error {
	column, ok := fieldColumns[field]
	if !ok || !field.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidField, field)
	}

	var arg any = value
	if field == model.FieldPosted {
		posted, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: posted = %q", ErrInvalidValue, value)
		}
		arg = boolInt(posted)
	}

	res, err := r.db.ExecContext(ctx, `UPDATE records SET `+column+` = ? WHERE id = ?`, arg, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListByDay(ctx context.Context, day string) ([]model.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, day, start_time, end_time, description, posted
		FROM records
		WHERE day = ?
		ORDER BY start_time ASC`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *SQLiteRepository) ListByDayRange(ctx context.Context, fromDay, toDay string) ([]model.Record, error) {
	from, ok := clock.SortableDay(fromDay)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, fromDay)
	}
	to, ok := clock.SortableDay(toDay)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, toDay)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, day, start_time, end_time, description, posted
		FROM records
		WHERE `+sortableDayExpr+` BETWEEN ? AND ?
		ORDER BY `+sortableDayExpr+` ASC, start_time ASC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (model.Record, error) {
	var out model.Record
	var posted int
	if err := s.Scan(&out.ID, &out.Day, &out.Start, &out.End, &out.Description, &posted); err != nil {
		return model.Record{}, err
	}
	out.Posted = posted == 1
	return out, nil
}

func collectRecords(rows *sql.Rows) ([]model.Record, error) {
	out := make([]model.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
