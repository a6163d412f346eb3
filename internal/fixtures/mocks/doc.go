// Package mocks provides testify mocks for the repository and unit of work
// contracts, shaped after mockery's expecter output so tests can write
//
//	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(...)
package mocks
