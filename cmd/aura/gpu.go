//go:build gpu

package main

import _ "github.com/gogpu/gg/gpu" // Register GPU accelerator for overlay strokes
