//go:build !ebiten

package app

import (
	"errors"

	"floating-nodes/internal/nodes"
)

// ErrNoWindow reports that the binary was built without window support.
var ErrNoWindow = errors.New("app: window support requires building with the 'ebiten' tag")

// Run reports that the GUI build tag is missing.
func Run(nodes.Config, *Options) error {
	return ErrNoWindow
}
