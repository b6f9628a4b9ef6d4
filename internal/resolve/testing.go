/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"github.com/calderops/provar/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockResolver implements Resolver for testing
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(environment string, maps []*ParameterMap) (*model.ResolvedConfiguration, error) {
	args := m.Called(environment, maps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResolvedConfiguration), args.Error(1)
}
