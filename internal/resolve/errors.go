/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import "fmt"

// UnknownEnvironmentError indicates the active environment is not in the registry
type UnknownEnvironmentError struct {
	Environment string
}

func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf("environment %q is not registered", e.Environment)
}

// MissingParameterError indicates a parameter map has no entry for the active
// environment and no declared fallback
type MissingParameterError struct {
	Parameter   string
	Environment string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("parameter %q has no value for environment %q and no fallback", e.Parameter, e.Environment)
}
