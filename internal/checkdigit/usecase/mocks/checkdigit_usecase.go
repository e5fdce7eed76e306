// Package mocks provides mock implementations of the check digit use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/checkdigit/internal/checkdigit/domain"
)

// MockCheckDigitUseCase is a mock implementation of CheckDigitUseCase for testing.
type MockCheckDigitUseCase struct {
	mock.Mock
}

// NewMockCheckDigitUseCase creates a mock and asserts its expectations when the test ends.
func NewMockCheckDigitUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheckDigitUseCase {
	m := &MockCheckDigitUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Compute mocks the Compute method of CheckDigitUseCase.
func (m *MockCheckDigitUseCase) Compute(
	ctx context.Context,
	documentType domain.DocumentType,
	number string,
) (*domain.Result, error) {
	args := m.Called(ctx, documentType, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Result), args.Error(1)
}

// Verify mocks the Verify method of CheckDigitUseCase.
func (m *MockCheckDigitUseCase) Verify(
	ctx context.Context,
	documentType domain.DocumentType,
	fullNumber string,
) (bool, error) {
	args := m.Called(ctx, documentType, fullNumber)
	return args.Bool(0), args.Error(1)
}

// Generate mocks the Generate method of CheckDigitUseCase.
func (m *MockCheckDigitUseCase) Generate(
	ctx context.Context,
	documentType domain.DocumentType,
	length, count int,
) ([]*domain.Result, error) {
	args := m.Called(ctx, documentType, length, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Result), args.Error(1)
}

// ComputeBatch mocks the ComputeBatch method of CheckDigitUseCase.
func (m *MockCheckDigitUseCase) ComputeBatch(
	ctx context.Context,
	documentType domain.DocumentType,
	numbers []string,
) (*domain.BatchReport, error) {
	args := m.Called(ctx, documentType, numbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchReport), args.Error(1)
}
