/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDescriber implements Describer for testing
type MockDescriber struct {
	mock.Mock
}

func (m *MockDescriber) DescribeStack(ctx context.Context, stackName, region string) (*StackDescription, error) {
	args := m.Called(ctx, stackName, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StackDescription), args.Error(1)
}
