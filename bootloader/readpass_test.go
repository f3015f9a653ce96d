package bootloader

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
)

func TestReadErrorPass_Latches(t *testing.T) {
	rep := NewReadErrorPass(bytes.NewReader([]byte{1, 2, 3}))
	buf := make([]byte, 2)
	if rep.ReadPass(buf) != 2 || rep.IsPass() != nil {
		t.Fatalf("Expected first read to succeed")
	}
	if rep.ReadPass(buf) != 1 {
		t.Fatalf("Expected a partial read of 1")
	}
	if !errors.Is(rep.IsPass(), io.ErrUnexpectedEOF) {
		t.Fatalf("Expected unexpected EOF, got %v", rep.IsPass())
	}
	// Nothing is read once failed
	if rep.ReadBytePass() != 0 || rep.Total() != 3 {
		t.Fatalf("Reads should stop after the first error")
	}
}

func TestReadErrorPass_Trickle(t *testing.T) {
	data := linearData(50)
	rep := NewReadErrorPass(&trickleReader{data: data})
	buf := make([]byte, 50)
	rep.ReadPass(buf)
	if rep.IsPass() != nil || !bytes.Equal(buf, data) {
		t.Fatalf("Expected full read from trickle, err: %v", rep.IsPass())
	}
}

func TestReadErrorPass_DataWithEOF(t *testing.T) {
	rep := NewReadErrorPass(iotest.DataErrReader(bytes.NewReader([]byte{1, 2, 3})))
	buf := make([]byte, 3)
	n, err := rep.Read(buf)
	if n != 3 || err != nil || rep.IsPass() != nil {
		t.Fatalf("Expected full read with no error, got %d, %v", n, err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3}) {
		t.Fatalf("Unexpected data: %v", buf)
	}
	// The EOF shows up on the next read, and stays
	if rep.ReadBytePass() != 0 || rep.IsPass() != io.EOF {
		t.Fatalf("Expected EOF on the following read, got %v", rep.IsPass())
	}
	if rep.Total() != 3 {
		t.Fatalf("Expected 3 bytes total, got %d", rep.Total())
	}
}
