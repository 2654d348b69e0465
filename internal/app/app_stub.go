//go:build !ebiten

package app

// Run always reports that the GUI build tag is missing.
func Run(*Config) error {
	return ErrNoWindow
}
