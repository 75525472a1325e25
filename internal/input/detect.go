package input

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"

	"termnav/internal/terminal"
)

// Keymap names accepted in config and flags
const (
	KeymapAuto       = "auto"
	KeymapCSI        = "csi"
	KeymapVirtualKey = "vk"
	// KeymapVirtualKeyAlias is the long spelling of KeymapVirtualKey
	KeymapVirtualKeyAlias = "virtual-key"
)

// DetectTable picks the decoding table once at startup. An explicit keymap
// wins; "auto" matches the table to the raw mode the terminal package sets.
func DetectTable(keymap string, in *os.File) (*Table, error) {
	switch keymap {
	case KeymapCSI:
		return CSITable(), nil
	case KeymapVirtualKey, KeymapVirtualKeyAlias:
		return VirtualKeyTable(), nil
	case "", KeymapAuto:
		cygwin := in != nil && isatty.IsCygwinTerminal(in.Fd())
		return detect(runtime.GOOS, cygwin, terminal.RawModeVTInput), nil
	}
	return nil, fmt.Errorf("unknown keymap %q", keymap)
}

// detect selects the virtual-key table only for a native Windows console
// whose raw mode leaves VT input off. Cygwin/MSYS ptys and VT-input
// consoles deliver CSI sequences.
func detect(goos string, cygwin, vtInput bool) *Table {
	if goos != "windows" || cygwin || vtInput {
		return CSITable()
	}
	return VirtualKeyTable()
}
