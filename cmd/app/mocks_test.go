package main

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/pizzavalue/internal/domain"
	"github.com/osse101/pizzavalue/internal/menu"
)

// MockLoader implements menu.Loader for testing
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(path string) (*menu.Config, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Config), args.Error(1)
}

func (m *MockLoader) Parse(data []byte) (*menu.Config, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Config), args.Error(1)
}

func (m *MockLoader) Validate(config *menu.Config) error {
	args := m.Called(config)
	return args.Error(0)
}

func (m *MockLoader) Build(config *menu.Config) ([]domain.Pizza, error) {
	args := m.Called(config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pizza), args.Error(1)
}
