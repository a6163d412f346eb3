package mocks

import (
	"context"
	"reflect"

	"github.com/prosperitycompass/backend/pkg/repository"
	"github.com/prosperitycompass/backend/pkg/repository/account"
	"github.com/prosperitycompass/backend/pkg/repository/seed"
	"github.com/prosperitycompass/backend/pkg/repository/transaction"
	"github.com/prosperitycompass/backend/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a testify mock with a typed expecter API.
type MockUnitOfWork struct {
	mock.Mock
}

type MockUnitOfWork_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUnitOfWork) EXPECT() *MockUnitOfWork_Expecter {
	return &MockUnitOfWork_Expecter{mock: &_m.Mock}
}

func (_m *MockUnitOfWork) Do(ctx context.Context, fn func(repository.UnitOfWork) error) error {
	ret := _m.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for Do")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.UnitOfWork) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

type MockUnitOfWork_Do_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) Do(ctx interface{}, fn interface{}) *MockUnitOfWork_Do_Call {
	return &MockUnitOfWork_Do_Call{Call: _e.mock.On("Do", ctx, fn)}
}

func (_c *MockUnitOfWork_Do_Call) Run(run func(ctx context.Context, fn func(repository.UnitOfWork) error)) *MockUnitOfWork_Do_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(repository.UnitOfWork) error))
	})
	return _c
}

func (_c *MockUnitOfWork_Do_Call) Return(_a0 error) *MockUnitOfWork_Do_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUnitOfWork_Do_Call) RunAndReturn(run func(context.Context, func(repository.UnitOfWork) error) error) *MockUnitOfWork_Do_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockUnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	ret := _m.Called(repoType)

	if len(ret) == 0 {
		panic("no return value specified for GetRepository")
	}

	var r0 any
	var r1 error
	if rf, ok := ret.Get(0).(func(reflect.Type) (any, error)); ok {
		return rf(repoType)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(any)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type MockUnitOfWork_GetRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) GetRepository(repoType interface{}) *MockUnitOfWork_GetRepository_Call {
	return &MockUnitOfWork_GetRepository_Call{Call: _e.mock.On("GetRepository", repoType)}
}

func (_c *MockUnitOfWork_GetRepository_Call) Run(run func(repoType reflect.Type)) *MockUnitOfWork_GetRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(reflect.Type))
	})
	return _c
}

func (_c *MockUnitOfWork_GetRepository_Call) Return(_a0 any, _a1 error) *MockUnitOfWork_GetRepository_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUnitOfWork_GetRepository_Call) RunAndReturn(run func(reflect.Type) (any, error)) *MockUnitOfWork_GetRepository_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockUnitOfWork) UserRepository() (user.Repository, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for UserRepository")
	}

	var r0 user.Repository
	var r1 error
	if rf, ok := ret.Get(0).(func() (user.Repository, error)); ok {
		return rf()
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(user.Repository)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type MockUnitOfWork_UserRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) UserRepository() *MockUnitOfWork_UserRepository_Call {
	return &MockUnitOfWork_UserRepository_Call{Call: _e.mock.On("UserRepository")}
}

func (_c *MockUnitOfWork_UserRepository_Call) Run(run func()) *MockUnitOfWork_UserRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockUnitOfWork_UserRepository_Call) Return(_a0 user.Repository, _a1 error) *MockUnitOfWork_UserRepository_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUnitOfWork_UserRepository_Call) RunAndReturn(run func() (user.Repository, error)) *MockUnitOfWork_UserRepository_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockUnitOfWork) AccountRepository() (account.Repository, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AccountRepository")
	}

	var r0 account.Repository
	var r1 error
	if rf, ok := ret.Get(0).(func() (account.Repository, error)); ok {
		return rf()
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(account.Repository)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type MockUnitOfWork_AccountRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) AccountRepository() *MockUnitOfWork_AccountRepository_Call {
	return &MockUnitOfWork_AccountRepository_Call{Call: _e.mock.On("AccountRepository")}
}

func (_c *MockUnitOfWork_AccountRepository_Call) Run(run func()) *MockUnitOfWork_AccountRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockUnitOfWork_AccountRepository_Call) Return(_a0 account.Repository, _a1 error) *MockUnitOfWork_AccountRepository_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUnitOfWork_AccountRepository_Call) RunAndReturn(run func() (account.Repository, error)) *MockUnitOfWork_AccountRepository_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockUnitOfWork) TransactionRepository() (transaction.Repository, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for TransactionRepository")
	}

	var r0 transaction.Repository
	var r1 error
	if rf, ok := ret.Get(0).(func() (transaction.Repository, error)); ok {
		return rf()
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(transaction.Repository)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type MockUnitOfWork_TransactionRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) TransactionRepository() *MockUnitOfWork_TransactionRepository_Call {
	return &MockUnitOfWork_TransactionRepository_Call{Call: _e.mock.On("TransactionRepository")}
}

func (_c *MockUnitOfWork_TransactionRepository_Call) Run(run func()) *MockUnitOfWork_TransactionRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockUnitOfWork_TransactionRepository_Call) Return(_a0 transaction.Repository, _a1 error) *MockUnitOfWork_TransactionRepository_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUnitOfWork_TransactionRepository_Call) RunAndReturn(run func() (transaction.Repository, error)) *MockUnitOfWork_TransactionRepository_Call {
	_c.Call.Return(run)
	return _c
}

func (_m *MockUnitOfWork) SeedRepository() (seed.Repository, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for SeedRepository")
	}

	var r0 seed.Repository
	var r1 error
	if rf, ok := ret.Get(0).(func() (seed.Repository, error)); ok {
		return rf()
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(seed.Repository)
	}
	r1 = ret.Error(1)

	return r0, r1
}

type MockUnitOfWork_SeedRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) SeedRepository() *MockUnitOfWork_SeedRepository_Call {
	return &MockUnitOfWork_SeedRepository_Call{Call: _e.mock.On("SeedRepository")}
}

func (_c *MockUnitOfWork_SeedRepository_Call) Run(run func()) *MockUnitOfWork_SeedRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockUnitOfWork_SeedRepository_Call) Return(_a0 seed.Repository, _a1 error) *MockUnitOfWork_SeedRepository_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUnitOfWork_SeedRepository_Call) RunAndReturn(run func() (seed.Repository, error)) *MockUnitOfWork_SeedRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork. It registers a
// cleanup function that asserts the mock's expectations.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
