package bootloader

import (
	"io"

	"github.com/marcinbor85/gohex"
)

const HexLineLength = 16

// Convert raw image data into an intel hex file starting at the given flash address.
func BinToHex(data []byte, base uint32, writer io.Writer) error {
	mem := gohex.NewMemory()
	err := mem.AddBinary(base, data)
	if err != nil {
		return err
	}
	return mem.DumpIntelHex(writer, HexLineLength)
}
