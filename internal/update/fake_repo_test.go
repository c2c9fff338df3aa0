package update

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/sandeepkv93/timesheet/internal/clock"
	"github.com/sandeepkv93/timesheet/internal/model"
	"github.com/sandeepkv93/timesheet/internal/storage"
)

var errAny = errors.New("boom")

// fakeRepo is an in-memory storage.Repository that counts calls so tests
// can assert the reconciliation protocol's exactly-once guarantees.
type fakeRepo struct {
	records map[string]model.Record

	insertCalls int
	updateCalls int
	deleteCalls int
	listCalls   int

	failUpdate error
}

func newFakeRepo(records ...model.Record) *fakeRepo {
	repo := &fakeRepo{records: make(map[string]model.Record)}
	for _, rec := range records {
		repo.records[rec.ID] = rec
	}
	return repo
}

func (r *fakeRepo) Insert(_ context.Context, in model.Record) error {
	r.insertCalls++
	if err := in.Validate(); err != nil {
		return err
	}
	if _, exists := r.records[in.ID]; exists {
		return fmt.Errorf("duplicate id %s", in.ID)
	}
	r.records[in.ID] = in
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id string) (model.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return model.Record{}, storage.ErrNotFound
	}
	return rec, nil
}

func (r *fakeRepo) UpdateField(_ context.Context, id string, field model.Field, value string) error {
	r.updateCalls++
	if r.failUpdate != nil {
		return r.failUpdate
	}
	if !field.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidField, field)
	}
	rec, ok := r.records[id]
	if !ok {
		return storage.ErrNotFound
	}
	switch field {
	case model.FieldStart:
		rec.Start = value
	case model.FieldEnd:
		rec.End = value
	case model.FieldDescription:
		rec.Description = value
	case model.FieldPosted:
		posted, err := strconv.ParseBool(value)
		if err != nil {
			return storage.ErrInvalidValue
		}
		rec.Posted = posted
	}
	r.records[id] = rec
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.deleteCalls++
	if _, ok := r.records[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRepo) ListByDay(_ context.Context, day string) ([]model.Record, error) {
	r.listCalls++
	out := make([]model.Record, 0)
	for _, rec := range r.records {
		if rec.Day == day {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func (r *fakeRepo) ListByDayRange(_ context.Context, fromDay, toDay string) ([]model.Record, error) {
	r.listCalls++
	from, ok := clock.SortableDay(fromDay)
	if !ok {
		return nil, storage.ErrInvalidDay
	}
	to, ok := clock.SortableDay(toDay)
	if !ok {
		return nil, storage.ErrInvalidDay
	}
	out := make([]model.Record, 0)
	for _, rec := range r.records {
		key, ok := clock.SortableDay(rec.Day)
		if !ok {
			continue
		}
		if key >= from && key <= to {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ki, _ := clock.SortableDay(out[i].Day)
		kj, _ := clock.SortableDay(out[j].Day)
		if ki != kj {
			return ki < kj
		}
		return out[i].Start < out[j].Start
	})
	return out, nil
}
