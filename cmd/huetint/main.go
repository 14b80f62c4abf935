// Huetint - generate system-wide themes from any wallpaper
//
// Huetint extracts the dominant colours from a wallpaper, derives a
// complete theme palette from the best accent candidate, and renders
// configuration files for GTK, terminals, editors and browsers.
//
// Copyright (c) 2025 The huetint authors
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/huetint/huetint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
