package commands_test

import (
	"context"
	"time"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/attempt"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository hands the form registered with On("Update") to the
// mutate callback, so handler tests observe the real domain behaviour.
type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, form *checkout.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*checkout.Form, error) {
	args := m.Called(ctx, id)
	form, _ := args.Get(0).(*checkout.Form)
	return form, args.Error(1)
}

func (m *MockSessionRepository) Update(
	ctx context.Context,
	id kernel.UUID,
	mutate func(form *checkout.Form) error,
) error {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return err
	}
	return mutate(args.Get(0).(*checkout.Form))
}

func (m *MockSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockAttemptRepository struct{ mock.Mock }

func (m *MockAttemptRepository) Add(ctx context.Context, a *attempt.Attempt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockAttemptUoW struct{ mock.Mock }

func (m *MockAttemptUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttemptUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttemptUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttemptUoW) AttemptRepository() ports.AttemptRepository {
	args := m.Called()
	return args.Get(0).(ports.AttemptRepository)
}

func (m *MockAttemptUoW) TrackedAggregates() []any {
	args := m.Called()
	if f, ok := args.Get(0).(func() []any); ok {
		return f()
	}
	return args.Get(0).([]any)
}

type MockAttemptUoWFactory struct{ mock.Mock }

func (m *MockAttemptUoWFactory) Create() commands.AttemptUoW {
	args := m.Called()
	return args.Get(0).(commands.AttemptUoW)
}

type MockConfirmer struct{ mock.Mock }

func (m *MockConfirmer) ConfirmOrderPlaced() {
	m.Called()
}

type MockNavigator struct{ mock.Mock }

func (m *MockNavigator) Navigate(path string) {
	m.Called(path)
}
