/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"context"
	"fmt"
	"time"

	"github.com/calderops/provar/internal/aws"
)

// StackDescriber implements the Describer interface using AWS CloudFormation operations
type StackDescriber struct {
	clientFactory aws.ClientFactory
}

// NewStackDescriber creates a new describer with the provided client factory
func NewStackDescriber(clientFactory aws.ClientFactory) Describer {
	return &StackDescriber{
		clientFactory: clientFactory,
	}
}

// DescribeStack retrieves the deployed state of a CloudFormation stack
func (d *StackDescriber) DescribeStack(ctx context.Context, stackName, region string) (*StackDescription, error) {
	cfOps, err := d.clientFactory.GetCloudFormationOperations(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to get CloudFormation operations for region %s: %w", region, err)
	}

	stack, err := cfOps.DescribeStack(ctx, stackName)
	if err != nil {
		return nil, err
	}

	return &StackDescription{
		Name:        stack.Name,
		Status:      string(stack.Status),
		CreatedTime: dereferenceTime(stack.CreatedTime),
		UpdatedTime: stack.UpdatedTime,
		Description: stack.Description,
		Parameters:  orEmpty(stack.Parameters),
		Outputs:     orEmpty(stack.Outputs),
		Tags:        orEmpty(stack.Tags),
		Region:      region,
	}, nil
}

// dereferenceTime safely dereferences a time pointer
func dereferenceTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// orEmpty normalises a nil map to an empty one
func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return make(map[string]string)
	}
	return m
}
