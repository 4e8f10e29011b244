package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-sealed/internal/entity"
)

type mockConsole struct {
	mock.Mock
}

func newMockConsole(t *testing.T) *mockConsole {
	t.Helper()

	m := &mockConsole{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockConsole) ReadToken() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockConsole) WriteToken(token string) error {
	return m.Called(token).Error(0)
}

func (m *mockConsole) PromptPasskey(purpose entity.Purpose) (string, error) {
	args := m.Called(purpose)
	return args.String(0), args.Error(1)
}

func (m *mockConsole) PromptMove(board entity.Board, symbol string) (int, error) {
	args := m.Called(board, symbol)
	return args.Int(0), args.Error(1)
}

func (m *mockConsole) ShowBoard(board entity.Board) {
	m.Called(board)
}

func (m *mockConsole) Notify(message string) {
	m.Called(message)
}
