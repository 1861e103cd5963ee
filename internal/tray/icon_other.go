//go:build !windows

package tray

// platformIcon returns the PNG unchanged; Linux and macOS trays accept PNG
func platformIcon(png []byte, _ int) ([]byte, error) {
	return png, nil
}
