/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import (
	"context"
	"os"

	"github.com/calderops/provar/cmd"
	"github.com/calderops/provar/internal/version"
	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		cmd.Root(),
		fang.WithVersion(version.Short()),
	); err != nil {
		os.Exit(1)
	}
}
