/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter defines the interface for user prompting
type Prompter interface {
	ConfirmProvision(stackName, environment string) (bool, error)
	ConfirmTeardown(stackName, environment string) (bool, error)
}

// StdinPrompter implements Prompter using standard input
type StdinPrompter struct {
	input io.Reader
}

// NewStdinPrompter creates a new prompter that reads from stdin
func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{input: os.Stdin}
}

// NewStdinPrompterWithInput creates a prompter reading from the given reader (for testing)
func NewStdinPrompterWithInput(input io.Reader) *StdinPrompter {
	return &StdinPrompter{input: input}
}

// ConfirmProvision prompts the user via stdin to confirm provisioning
func (p *StdinPrompter) ConfirmProvision(stackName, environment string) (bool, error) {
	return p.confirm(fmt.Sprintf("\nDo you want to provision stack %s for environment %s? [y/N]: ", stackName, environment))
}

// ConfirmTeardown prompts the user via stdin to confirm stack deletion
func (p *StdinPrompter) ConfirmTeardown(stackName, environment string) (bool, error) {
	return p.confirm(fmt.Sprintf("\nDo you want to tear down stack %s for environment %s? This cannot be undone. [y/N]: ", stackName, environment))
}

func (p *StdinPrompter) confirm(message string) (bool, error) {
	fmt.Print(message)

	scanner := bufio.NewScanner(p.input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}
		// EOF or empty input - treat as "no"
		return false, nil
	}

	response := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return response == "y" || response == "yes", nil
}

// defaultPrompter is the package-level default prompter
var defaultPrompter Prompter = NewStdinPrompter()

// SetPrompter allows injection of a custom prompter (for testing)
func SetPrompter(p Prompter) {
	defaultPrompter = p
}

// ConfirmProvision prompts the user to confirm provisioning using the default prompter.
// Returns true if the user confirms (y/yes), false otherwise.
func ConfirmProvision(stackName, environment string) (bool, error) {
	return defaultPrompter.ConfirmProvision(stackName, environment)
}

// ConfirmTeardown prompts the user to confirm stack deletion using the default prompter
func ConfirmTeardown(stackName, environment string) (bool, error) {
	return defaultPrompter.ConfirmTeardown(stackName, environment)
}
