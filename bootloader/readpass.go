package bootloader

import (
	"errors"
	"io"
)

// A reader which remembers the first error it sees and refuses to read after that,
// so a run of reads can be checked once at the end.
type ReadErrorPass struct {
	r       io.Reader
	err     error
	pending error // Error that arrived alongside the bytes finishing the last read
	total   int   // Bytes successfully read so far
}

func NewReadErrorPass(r io.Reader) *ReadErrorPass {
	return &ReadErrorPass{r: r}
}

// Read until the entire slice is filled (blocking), skipping entirely if an error
// was already seen. An error that comes with the final bytes of a read doesn't
// fail that read; it's handed back on the next one instead.
func (rep *ReadErrorPass) Read(b []byte) (int, error) {
	if rep.err != nil {
		return 0, rep.err
	}
	if rep.pending != nil {
		rep.err, rep.pending = rep.pending, nil
		return 0, rep.err
	}
	readamount := 0
	slice := b
	for readamount < len(b) {
		bcount, err := rep.r.Read(slice)
		readamount += bcount
		rep.total += bcount
		slice = slice[bcount:]
		if err != nil {
			if readamount == len(b) {
				rep.pending = err
				return readamount, nil
			}
			if errors.Is(err, io.EOF) && readamount > 0 {
				err = io.ErrUnexpectedEOF
			}
			rep.err = err
			return readamount, err
		}
	}
	return readamount, nil
}

func (rep *ReadErrorPass) ReadPass(b []byte) int {
	val, _ := rep.Read(b)
	return val
}

// Read exactly one byte. Returns 0 if the pass has failed
func (rep *ReadErrorPass) ReadBytePass() byte {
	var one [1]byte
	rep.ReadPass(one[:])
	return one[0]
}

func (rep *ReadErrorPass) IsPass() error {
	return rep.err
}

func (rep *ReadErrorPass) Total() int {
	return rep.total
}
