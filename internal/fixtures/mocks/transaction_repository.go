package mocks

import (
	"context"

	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a testify mock with a typed expecter API.
type MockTransactionRepository struct {
	mock.Mock
}

type MockTransactionRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionRepository) EXPECT() *MockTransactionRepository_Expecter {
	return &MockTransactionRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockTransactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	ret := _m.Called(ctx, create)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, dto.TransactionCreate) error); ok {
		r0 = rf(ctx, create)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type MockTransactionRepository_Create_Call struct {
	*mock.Call
}

func (_e *MockTransactionRepository_Expecter) Create(ctx interface{}, create interface{}) *MockTransactionRepository_Create_Call {
	return &MockTransactionRepository_Create_Call{Call: _e.mock.On("Create", ctx, create)}
}

func (_c *MockTransactionRepository_Create_Call) Run(run func(ctx context.Context, create dto.TransactionCreate)) *MockTransactionRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(dto.TransactionCreate))
	})
	return _c
}

func (_c *MockTransactionRepository_Create_Call) Return(_a0 error) *MockTransactionRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTransactionRepository_Create_Call) RunAndReturn(run func(context.Context, dto.TransactionCreate) error) *MockTransactionRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockTransactionRepository) List(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []*dto.TransactionRead
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dto.TransactionFilter) ([]*dto.TransactionRead, error)); ok {
		return rf(ctx, filter)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*dto.TransactionRead)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type MockTransactionRepository_List_Call struct {
	*mock.Call
}

func (_e *MockTransactionRepository_Expecter) List(ctx interface{}, filter interface{}) *MockTransactionRepository_List_Call {
	return &MockTransactionRepository_List_Call{Call: _e.mock.On("List", ctx, filter)}
}

func (_c *MockTransactionRepository_List_Call) Run(run func(ctx context.Context, filter dto.TransactionFilter)) *MockTransactionRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(dto.TransactionFilter))
	})
	return _c
}

func (_c *MockTransactionRepository_List_Call) Return(_a0 []*dto.TransactionRead, _a1 error) *MockTransactionRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTransactionRepository_List_Call) RunAndReturn(run func(context.Context, dto.TransactionFilter) ([]*dto.TransactionRead, error)) *MockTransactionRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTransactionRepository creates a new instance of MockTransactionRepository. It registers a
// cleanup function that asserts the mock's expectations.
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
