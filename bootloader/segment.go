package bootloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	SegmentLengthSize = 1
	SegmentTypeSize   = 1
	SegmentDataSize   = 32
	SegmentCrcSize    = 1
	SegmentSize       = SegmentLengthSize + SegmentTypeSize + SegmentDataSize + SegmentCrcSize // 35

	SegmentTypeRetx = 1
	SegmentTypeAck  = 2

	Crc8Polynomial = 0x07
)

// One fixed layout unit off the bootloader's serial link. Nothing here is validated
// on read; the fields are exactly the bytes that arrived.
type Segment struct {
	Length uint8
	Type   uint8
	Data   [SegmentDataSize]byte
	Crc    uint8
}

// Read exactly one segment: length, type, each data byte, then crc, one read call at
// a time. There's no sync search, so a misaligned stream just produces garbage
// segments. A clean EOF before the first byte comes back as io.EOF; EOF partway
// through is io.ErrUnexpectedEOF.
func ReadSegment(r io.Reader) (*Segment, error) {
	rep := NewReadErrorPass(r)
	seg := &Segment{}
	seg.Length = rep.ReadBytePass()
	seg.Type = rep.ReadBytePass()
	for i := range seg.Data {
		seg.Data[i] = rep.ReadBytePass()
	}
	seg.Crc = rep.ReadBytePass()
	err := rep.IsPass()
	if err != nil {
		if errors.Is(err, io.EOF) && rep.Total() > 0 {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return seg, nil
}

// The segment exactly as it would appear on the wire
func (s *Segment) Bytes() []byte {
	result := make([]byte, 0, SegmentSize)
	result = append(result, s.Length, s.Type)
	result = append(result, s.Data[:]...)
	return append(result, s.Crc)
}

// CRC-8 (poly 0x07, init 0) over everything but the crc byte. This is what the
// bootloader's transport layer computes.
func (s *Segment) ComputeCrc() uint8 {
	return Crc8(s.Bytes()[:SegmentSize-SegmentCrcSize])
}

func (s *Segment) CrcOk() bool {
	return s.ComputeCrc() == s.Crc
}

func Crc8(data []byte) uint8 {
	var crc uint8
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ Crc8Polynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Control segments are zero length with all data bytes erased (0xFF)
func (s *Segment) isControl(typ uint8) bool {
	if s.Length != 0 || s.Type != typ {
		return false
	}
	return bytes.Count(s.Data[:], []byte{0xFF}) == SegmentDataSize
}

func (s *Segment) IsAck() bool {
	return s.isControl(SegmentTypeAck)
}

func (s *Segment) IsRetx() bool {
	return s.isControl(SegmentTypeRetx)
}

func (s *Segment) TypeName() string {
	if s.IsAck() {
		return "ack"
	}
	if s.IsRetx() {
		return "retx"
	}
	return "data"
}

// Build a control segment (ack/retx) with its crc filled in
func NewControlSegment(typ uint8) *Segment {
	seg := &Segment{Type: typ}
	copy(seg.Data[:], MakePadding(SegmentDataSize, 0xFF))
	seg.Crc = seg.ComputeCrc()
	return seg
}

// Print every field of the segment, one per line, then a blank separator
func (s *Segment) Print(w io.Writer) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Segment Length = %d\n", s.Length)
	fmt.Fprintf(&buf, "Segment Type = %d\n", s.Type)
	for i, d := range s.Data {
		fmt.Fprintf(&buf, "Data[%d] = %d\n", i, d)
	}
	fmt.Fprintf(&buf, "Segment CRC = %d\n", s.Crc)
	buf.WriteString("\n\n")
	_, err := w.Write(buf.Bytes())
	return err
}

type DumpOptions struct {
	Limit   int  // Stop after this many segments; 0 means never stop
	ShowCrc bool // Also print the computed crc and segment kind (never rejects anything)
}

// Read and print segments until the reader fails or the limit is hit. Returns how
// many segments were printed. With no limit this only returns on error.
func DumpSegments(r io.Reader, w io.Writer, opts DumpOptions) (int, error) {
	count := 0
	for opts.Limit <= 0 || count < opts.Limit {
		seg, err := ReadSegment(r)
		if err != nil {
			return count, fmt.Errorf("read segment %d: %w", count, err)
		}
		if opts.ShowCrc {
			status := "ok"
			if !seg.CrcOk() {
				status = "mismatch"
			}
			_, err = fmt.Fprintf(w, "Segment Kind = %s\nComputed CRC = %d (%s)\n",
				seg.TypeName(), seg.ComputeCrc(), status)
			if err != nil {
				return count, err
			}
		}
		err = seg.Print(w)
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
