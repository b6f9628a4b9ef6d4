/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package provision hands a resolved configuration to the CloudFormation
// backend. It is the only consumer of resolved configurations and refuses to
// act on one that failed validation.
package provision

import (
	"context"
	"fmt"

	"github.com/calderops/provar/internal/aws"
	"github.com/calderops/provar/internal/model"
	"github.com/calderops/provar/internal/schema"
)

// Input carries everything needed to provision one environment's stack
type Input struct {
	StackName     string
	Region        string
	TemplateURI   string
	Configuration *model.ResolvedConfiguration
	Validation    schema.ValidationResult
	Tags          map[string]string
}

// Provisioner orchestrates stack provisioning
type Provisioner interface {
	Provision(ctx context.Context, input Input) error
}

// StackProvisioner implements Provisioner against AWS CloudFormation
type StackProvisioner struct {
	clientFactory aws.ClientFactory
	templates     TemplateSource
	renderer      TemplateRenderer
}

// NewStackProvisioner creates a provisioner using the given client factory
func NewStackProvisioner(clientFactory aws.ClientFactory) *StackProvisioner {
	return &StackProvisioner{
		clientFactory: clientFactory,
		templates:     &FileTemplateSource{},
		renderer:      NewSprigTemplateRenderer(),
	}
}

// SetTemplateSource allows injecting a custom template source (for testing)
func (p *StackProvisioner) SetTemplateSource(source TemplateSource) {
	p.templates = source
}

// SetRenderer allows injecting a custom template renderer (for testing)
func (p *StackProvisioner) SetRenderer(renderer TemplateRenderer) {
	p.renderer = renderer
}

// Provision renders the provisioning template with the resolved configuration
// and deploys the stack. It must not proceed on a failing validation result.
func (p *StackProvisioner) Provision(ctx context.Context, input Input) error {
	if !input.Validation.Valid() {
		return fmt.Errorf("refusing to provision stack %s: configuration has %d validation violation(s)",
			input.StackName, len(input.Validation.Violations))
	}
	if input.TemplateURI == "" {
		return fmt.Errorf("no provisioning template declared for stack %s", input.StackName)
	}

	content, err := p.templates.Read(input.TemplateURI)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	body, err := p.renderer.Render(content, input.Configuration.AsTemplateData())
	if err != nil {
		return fmt.Errorf("failed to render template for stack %s: %w", input.StackName, err)
	}

	cfnOps, err := p.clientFactory.GetCloudFormationOperations(ctx, input.Region)
	if err != nil {
		return fmt.Errorf("failed to get CloudFormation operations: %w", err)
	}

	if err := cfnOps.ValidateTemplate(ctx, body); err != nil {
		return fmt.Errorf("rendered template for stack %s is invalid: %w", input.StackName, err)
	}

	return cfnOps.DeployStack(ctx, aws.DeployStackInput{
		StackName:    input.StackName,
		TemplateBody: body,
		Parameters:   scalarParameters(input.Configuration),
		Tags:         input.Tags,
	})
}

// scalarParameters converts the scalar resolved values to CloudFormation
// parameters. Map-shaped values only feed template rendering: CloudFormation
// parameters are flat strings.
func scalarParameters(cfg *model.ResolvedConfiguration) []aws.Parameter {
	var params []aws.Parameter
	for _, name := range cfg.Names() {
		value, _ := cfg.Get(name)
		if value.Kind == model.MapKind {
			continue
		}
		params = append(params, aws.Parameter{Key: name, Value: value.Render()})
	}
	return params
}
