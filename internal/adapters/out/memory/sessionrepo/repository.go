// Package sessionrepo keeps live checkout forms in process memory.
//
// Forms hold card data, so they are never written anywhere else. A session
// disappears when its order is placed, when it is deleted explicitly or when
// the expiry job sweeps it after a period of inactivity.
package sessionrepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// entry is one session. mu serialises Update calls of the session; form and
// deleted are guarded by mu, touchedAt by the repository lock.
type entry struct {
	mu        sync.Mutex
	form      *checkout.Form
	deleted   bool
	touchedAt time.Time
}

// Repository is a SessionRepository backed by a map.
//
// Locking: the repository lock is never held while waiting for a session
// lock, so a slow Update of one session does not block other sessions.
type Repository struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*entry
	now      func() time.Time
}

func NewRepository() *Repository {
	return NewRepositoryWithClock(time.Now)
}

// NewRepositoryWithClock uses now to stamp session activity.
func NewRepositoryWithClock(now func() time.Time) *Repository {
	return &Repository{
		sessions: make(map[kernel.UUID]*entry),
		now:      now,
	}
}

func (r *Repository) Add(_ context.Context, form *checkout.Form) error {
	if err := form.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[form.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"session", fmt.Errorf("session %s already exists", form.ID().String()))
	}

	r.sessions[form.ID()] = &entry{
		form:      form.Clone(),
		touchedAt: r.now(),
	}
	return nil
}

func (r *Repository) Get(_ context.Context, id kernel.UUID) (*checkout.Form, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return nil, notFound(id)
	}
	return e.form.Clone(), nil
}

// Update runs mutate on a copy of the stored form and keeps the copy only
// when mutate succeeds.
func (r *Repository) Update(ctx context.Context, id kernel.UUID, mutate func(form *checkout.Form) error) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return notFound(id)
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	working := e.form.Clone()
	if err = mutate(working); err != nil {
		return err
	}
	e.form = working

	r.mu.Lock()
	e.touchedAt = r.now()
	r.mu.Unlock()
	return nil
}

func (r *Repository) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		e.mu.Lock()
		e.deleted = true
		e.mu.Unlock()
	}
	return nil
}

func (r *Repository) DeleteIdleSince(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	expired := make([]*entry, 0)
	for id, e := range r.sessions {
		if e.touchedAt.Before(cutoff) {
			expired = append(expired, e)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, e := range expired {
		e.mu.Lock()
		e.deleted = true
		e.mu.Unlock()
	}
	return len(expired), nil
}

// Len returns the number of live sessions.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Repository) lookup(id kernel.UUID) (*entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, notFound(id)
	}
	return e, nil
}

func notFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("session", id.String())
}
