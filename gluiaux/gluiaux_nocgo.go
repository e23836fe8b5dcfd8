//go:build tinygo || !cgo

package gluiaux

import (
	"errors"

	"github.com/soypat/glui"
)

func run(ui *glui.Context, cfg UIConfig) error {
	return errors.New("require cgo for UI rendering")
}
