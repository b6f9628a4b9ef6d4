/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientFactory_CarriesClientConfig(t *testing.T) {
	factory := NewClientFactory(Config{Profile: "deploy"})

	assert.Equal(t, "deploy", factory.clientConfig.Profile)
	assert.NotNil(t, factory.clientCache)
}

func TestGetCloudFormationOperations_RejectsEmptyRegion(t *testing.T) {
	factory := NewClientFactory(Config{})

	ops, err := factory.GetCloudFormationOperations(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, ops)
	assert.Contains(t, err.Error(), "region cannot be empty")
}

func TestGetCloudFormationOperations_CachesPerRegion(t *testing.T) {
	factory := NewClientFactory(Config{})

	ops1, err := factory.GetCloudFormationOperations(context.Background(), "eu-west-1")
	require.NoError(t, err)

	ops2, err := factory.GetCloudFormationOperations(context.Background(), "eu-west-1")
	require.NoError(t, err)

	assert.Same(t, ops1, ops2)
}
