package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/repository/seed"
	"github.com/stretchr/testify/mock"
)

// MockSeedRepository is a testify mock with a typed expecter API.
type MockSeedRepository struct {
	mock.Mock
}

type MockSeedRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSeedRepository) EXPECT() *MockSeedRepository_Expecter {
	return &MockSeedRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockSeedRepository) Purge(ctx context.Context, userID *uuid.UUID, tag seed.Tag) (seed.Purged, error) {
	ret := _m.Called(ctx, userID, tag)

	if len(ret) == 0 {
		panic("no return value specified for Purge")
	}

	var r0 seed.Purged
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *uuid.UUID, seed.Tag) (seed.Purged, error)); ok {
		return rf(ctx, userID, tag)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(seed.Purged)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type MockSeedRepository_Purge_Call struct {
	*mock.Call
}

func (_e *MockSeedRepository_Expecter) Purge(ctx interface{}, userID interface{}, tag interface{}) *MockSeedRepository_Purge_Call {
	return &MockSeedRepository_Purge_Call{Call: _e.mock.On("Purge", ctx, userID, tag)}
}

func (_c *MockSeedRepository_Purge_Call) Run(run func(ctx context.Context, userID *uuid.UUID, tag seed.Tag)) *MockSeedRepository_Purge_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*uuid.UUID), args[2].(seed.Tag))
	})
	return _c
}

func (_c *MockSeedRepository_Purge_Call) Return(_a0 seed.Purged, _a1 error) *MockSeedRepository_Purge_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSeedRepository_Purge_Call) RunAndReturn(run func(context.Context, *uuid.UUID, seed.Tag) (seed.Purged, error)) *MockSeedRepository_Purge_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSeedRepository creates a new instance of MockSeedRepository. It registers a
// cleanup function that asserts the mock's expectations.
func NewMockSeedRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSeedRepository {
	m := &MockSeedRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
