//go:build windows

package tray

import "github.com/genricoloni/traympd/internal/icons"

// platformIcon converts a PNG icon to the ICO container the Windows tray requires
func platformIcon(png []byte, size int) ([]byte, error) {
	return icons.ICO(png, size)
}
