// Copyright © 2026 Neoview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/neoview/main.go
// Summary: Entry point for the neoview terminal front-end.

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := buildRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
