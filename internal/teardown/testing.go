/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package teardown

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTeardowner implements Teardowner for testing
type MockTeardowner struct {
	mock.Mock
}

func (m *MockTeardowner) TeardownStack(ctx context.Context, input Input) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
