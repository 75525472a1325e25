package input

import "termnav/internal/input/types"

const (
	keyESC = 0x1b
)

// CSITable decodes the POSIX convention: ESC [ followed by a final byte
func CSITable() *Table {
	t := newTable("csi")
	t.on(stateGround, keyESC, moveTo(stateEscape))
	t.on(stateEscape, '[', moveTo(stateCSI))

	t.on(stateCSI, 'A', emit(types.Up()))
	t.on(stateCSI, 'B', emit(types.Down()))
	t.on(stateCSI, 'C', emit(types.Right()))
	t.on(stateCSI, 'D', emit(types.Left()))
	t.on(stateCSI, 'H', emit(types.Home()))
	t.on(stateCSI, 'F', emit(types.End()))

	t.timeouts[stateEscape] = types.Cancel()
	t.timeouts[stateCSI] = types.Unknown()
	return t
}

// VirtualKeyTable decodes the console convention where special keys arrive
// as a 0xE0 or 0x00 prefix followed by a single scan-code byte
func VirtualKeyTable() *Table {
	t := newTable("vk")
	t.on(stateGround, 0xe0, moveTo(stateVirtualKey))
	t.on(stateGround, 0x00, moveTo(stateVirtualKey))
	t.on(stateGround, keyESC, emit(types.Cancel()))

	t.on(stateVirtualKey, 'H', emit(types.Up()))
	t.on(stateVirtualKey, 'P', emit(types.Down()))
	t.on(stateVirtualKey, 'K', emit(types.Left()))
	t.on(stateVirtualKey, 'M', emit(types.Right()))
	t.on(stateVirtualKey, 'G', emit(types.Home()))
	t.on(stateVirtualKey, 'O', emit(types.End()))

	t.timeouts[stateVirtualKey] = types.Unknown()
	return t
}
