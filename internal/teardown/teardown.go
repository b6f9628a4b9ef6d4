/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package teardown removes an environment's stack from AWS CloudFormation.
package teardown

import (
	"context"
	"fmt"
	"io"

	"github.com/calderops/provar/internal/aws"
	"github.com/calderops/provar/internal/prompt"
)

// Input describes the stack to tear down
type Input struct {
	StackName   string
	Environment string
	Region      string
}

// Teardowner defines the interface for stack teardown operations
type Teardowner interface {
	TeardownStack(ctx context.Context, input Input) error
}

// StackTeardowner implements Teardowner using AWS CloudFormation
type StackTeardowner struct {
	clientFactory aws.ClientFactory
	output        io.Writer
}

// NewStackTeardowner creates a new StackTeardowner writing progress to output
func NewStackTeardowner(clientFactory aws.ClientFactory, output io.Writer) *StackTeardowner {
	return &StackTeardowner{
		clientFactory: clientFactory,
		output:        output,
	}
}

// TeardownStack deletes a CloudFormation stack after user confirmation.
// A stack that does not exist is not an error.
func (t *StackTeardowner) TeardownStack(ctx context.Context, input Input) error {
	cfnOps, err := t.clientFactory.GetCloudFormationOperations(ctx, input.Region)
	if err != nil {
		return fmt.Errorf("failed to get CloudFormation operations for region %s: %w", input.Region, err)
	}

	exists, err := cfnOps.StackExists(ctx, input.StackName)
	if err != nil {
		return fmt.Errorf("failed to check if stack exists: %w", err)
	}
	if !exists {
		fmt.Fprintf(t.output, "Stack %s does not exist, nothing to tear down\n", input.StackName)
		return nil
	}

	stack, err := cfnOps.DescribeStack(ctx, input.StackName)
	if err != nil {
		return fmt.Errorf("failed to describe stack %s: %w", input.StackName, err)
	}

	fmt.Fprintf(t.output, "Stack %s (environment %s) is currently %s.\n", input.StackName, input.Environment, stack.Status)
	fmt.Fprintf(t.output, "Tearing it down permanently deletes the stack and all its resources.\n")

	confirmed, err := prompt.ConfirmTeardown(input.StackName, input.Environment)
	if err != nil {
		return fmt.Errorf("failed to get user confirmation: %w", err)
	}
	if !confirmed {
		fmt.Fprintf(t.output, "Teardown of stack %s cancelled\n", input.StackName)
		return nil
	}

	if err := cfnOps.DeleteStack(ctx, input.StackName); err != nil {
		return err
	}

	fmt.Fprintf(t.output, "Deletion of stack %s started\n", input.StackName)
	return nil
}
