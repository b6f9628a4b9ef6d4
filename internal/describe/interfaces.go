/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package describe retrieves the deployed state of an environment's stack
// from AWS CloudFormation.
package describe

import (
	"context"
	"time"
)

// Describer defines the interface for retrieving deployed stack information
type Describer interface {
	DescribeStack(ctx context.Context, stackName, region string) (*StackDescription, error)
}

// StackDescription contains the deployed state of an environment's stack
type StackDescription struct {
	Name        string
	Status      string
	CreatedTime time.Time
	UpdatedTime *time.Time
	Description string

	Parameters map[string]string
	Outputs    map[string]string
	Tags       map[string]string

	Region string
}
