package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock with a typed expecter API.
type MockAccountRepository struct {
	mock.Mock
}

type MockAccountRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountRepository) EXPECT() *MockAccountRepository_Expecter {
	return &MockAccountRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockAccountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	ret := _m.Called(ctx, create)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, dto.AccountCreate) error); ok {
		r0 = rf(ctx, create)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type MockAccountRepository_Create_Call struct {
	*mock.Call
}

func (_e *MockAccountRepository_Expecter) Create(ctx interface{}, create interface{}) *MockAccountRepository_Create_Call {
	return &MockAccountRepository_Create_Call{Call: _e.mock.On("Create", ctx, create)}
}

func (_c *MockAccountRepository_Create_Call) Run(run func(ctx context.Context, create dto.AccountCreate)) *MockAccountRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(dto.AccountCreate))
	})
	return _c
}

func (_c *MockAccountRepository_Create_Call) Return(_a0 error) *MockAccountRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockAccountRepository_Create_Call) RunAndReturn(run func(context.Context, dto.AccountCreate) error) *MockAccountRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockAccountRepository) GetOwned(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*dto.AccountRead, error) {
	ret := _m.Called(ctx, id, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetOwned")
	}

	var r0 *dto.AccountRead
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*dto.AccountRead, error)); ok {
		return rf(ctx, id, userID)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*dto.AccountRead)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type MockAccountRepository_GetOwned_Call struct {
	*mock.Call
}

func (_e *MockAccountRepository_Expecter) GetOwned(ctx interface{}, id interface{}, userID interface{}) *MockAccountRepository_GetOwned_Call {
	return &MockAccountRepository_GetOwned_Call{Call: _e.mock.On("GetOwned", ctx, id, userID)}
}

func (_c *MockAccountRepository_GetOwned_Call) Run(run func(ctx context.Context, id uuid.UUID, userID uuid.UUID)) *MockAccountRepository_GetOwned_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockAccountRepository_GetOwned_Call) Return(_a0 *dto.AccountRead, _a1 error) *MockAccountRepository_GetOwned_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountRepository_GetOwned_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*dto.AccountRead, error)) *MockAccountRepository_GetOwned_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListByUser")
	}

	var r0 []*dto.AccountRead
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*dto.AccountRead, error)); ok {
		return rf(ctx, userID)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*dto.AccountRead)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type MockAccountRepository_ListByUser_Call struct {
	*mock.Call
}

func (_e *MockAccountRepository_Expecter) ListByUser(ctx interface{}, userID interface{}) *MockAccountRepository_ListByUser_Call {
	return &MockAccountRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID)}
}

func (_c *MockAccountRepository_ListByUser_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockAccountRepository_ListByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockAccountRepository_ListByUser_Call) Return(_a0 []*dto.AccountRead, _a1 error) *MockAccountRepository_ListByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountRepository_ListByUser_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*dto.AccountRead, error)) *MockAccountRepository_ListByUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAccountRepository creates a new instance of MockAccountRepository. It registers a
// cleanup function that asserts the mock's expectations.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
