package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *Client) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListFiles(dir, ext string) (map[string]struct{}, error) {
	args := m.Called(dir, ext)
	if files, ok := args.Get(0).(map[string]struct{}); ok {
		return files, args.Error(1)
	}
	return nil, args.Error(1)
}
