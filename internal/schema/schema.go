/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package schema validates a resolved configuration against the parameter
// shapes a configuration declares.
package schema

import (
	"fmt"

	"github.com/calderops/provar/internal/model"
)

// Shape is the expected form of a parameter value
type Shape string

const (
	ShapeString Shape = "string"
	ShapeNumber Shape = "number"
	ShapeMap    Shape = "map"
)

// ParseShape converts a shape name from configuration into a Shape
func ParseShape(name string) (Shape, error) {
	switch Shape(name) {
	case ShapeString, ShapeNumber, ShapeMap:
		return Shape(name), nil
	default:
		return "", fmt.Errorf("unknown schema shape %q (expected string, number or map)", name)
	}
}

// ShapeOf returns the shape a value actually has
func ShapeOf(value model.Value) Shape {
	switch value.Kind {
	case model.NumberKind:
		return ShapeNumber
	case model.MapKind:
		return ShapeMap
	default:
		return ShapeString
	}
}

// Schema declares the required parameter names and their expected shapes.
// Every declared name is required; names absent from the schema are drift.
type Schema map[string]Shape
