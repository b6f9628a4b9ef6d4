/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provision

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvisioner implements Provisioner for testing
type MockProvisioner struct {
	mock.Mock
}

func (m *MockProvisioner) Provision(ctx context.Context, input Input) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// MockTemplateSource implements TemplateSource for testing
type MockTemplateSource struct {
	mock.Mock
}

func (m *MockTemplateSource) Read(templateURI string) (string, error) {
	args := m.Called(templateURI)
	return args.String(0), args.Error(1)
}
