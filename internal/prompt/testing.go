/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"github.com/stretchr/testify/mock"
)

// MockPrompter implements Prompter for testing
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) ConfirmProvision(stackName, environment string) (bool, error) {
	args := m.Called(stackName, environment)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrompter) ConfirmTeardown(stackName, environment string) (bool, error) {
	args := m.Called(stackName, environment)
	return args.Bool(0), args.Error(1)
}
