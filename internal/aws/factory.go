/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"sync"
)

// ClientFactory creates AWS clients with proper region configuration
type ClientFactory interface {
	// GetCloudFormationOperations returns CloudFormation operations for specified region
	GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error)
}

// DefaultClientFactory implements ClientFactory with per-region client caching.
// The client configuration (profile) is shared by every client it creates.
type DefaultClientFactory struct {
	clientConfig Config
	clientCache  map[string]CloudFormationOperations
	mutex        sync.RWMutex
}

// NewClientFactory creates a client factory carrying the given client
// configuration into every region-bound client
func NewClientFactory(cfg Config) *DefaultClientFactory {
	return &DefaultClientFactory{
		clientConfig: cfg,
		clientCache:  make(map[string]CloudFormationOperations),
	}
}

// GetCloudFormationOperations returns CloudFormation operations for the specified region
func (f *DefaultClientFactory) GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error) {
	if region == "" {
		return nil, fmt.Errorf("region cannot be empty")
	}

	f.mutex.RLock()
	if ops, exists := f.clientCache[region]; exists {
		f.mutex.RUnlock()
		return ops, nil
	}
	f.mutex.RUnlock()

	client, err := NewDefaultClient(ctx, Config{
		Region:  region,
		Profile: f.clientConfig.Profile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client for region %s: %w", region, err)
	}
	ops := client.NewCloudFormationOperations()

	f.mutex.Lock()
	f.clientCache[region] = ops
	f.mutex.Unlock()

	return ops, nil
}
