package bootloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
)

// Outcome of one padding run. Serialized as-is for --json output
type PadResult struct {
	File         string
	OriginalSize int
	TargetSize   int
	PaddingAdded int
	Oversized    bool // File was already past the target; left alone
}

// Produce a slice of the given length filled entirely with fill. Flash erases to
// 0xFF, so that's what most callers want.
func MakePadding(length int, fill byte) []byte {
	if length <= 0 {
		return []byte{}
	}
	return bytes.Repeat([]byte{fill}, length)
}

// Extend data to the target length with the fill byte. Returns the (possibly new)
// data and how many bytes were added. Data at or past the target is returned as-is.
func PadImage(data []byte, target int, fill byte) ([]byte, int) {
	if len(data) >= target {
		return data, 0
	}
	added := target - len(data)
	result := make([]byte, 0, target)
	result = append(result, data...)
	result = append(result, MakePadding(added, fill)...)
	return result, added
}

// Pad the file at path out to target bytes. The whole file is read, then rewritten
// in a single write as original content + padding. Files already at or past the target
// are never touched. There is no temp file, so a crash mid-write can leave the
// file truncated.
func PadFile(path string, target int, fill byte) (*PadResult, error) {
	return PadFileReport(path, target, fill, nil)
}

// Same as PadFile, but the report goes to w (if not nil) before the file is
// rewritten, so a failed write shows up after the line announcing it.
func PadFileReport(path string, target int, fill byte, w io.Writer) (*PadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newPadError(path, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newPadError(path, err)
	}
	result := &PadResult{
		File:         path,
		OriginalSize: len(raw),
		TargetSize:   target,
	}
	if len(raw) >= target {
		result.Oversized = len(raw) > target
		if w != nil {
			result.Report(w)
		}
		return result, nil
	}
	padded, added := PadImage(raw, target, fill)
	result.PaddingAdded = added
	if w != nil {
		result.Report(w)
	}
	err = os.WriteFile(path, padded, info.Mode().Perm())
	if err != nil {
		return nil, newPadError(path, err)
	}
	log.Printf("Wrote %d bytes to %s (%d padding)\n", len(padded), path, added)
	return result, nil
}

func newPadError(path string, err error) *PadError {
	kind := IOFailure
	if errors.Is(err, fs.ErrNotExist) {
		kind = FileNotFound
	}
	return &PadError{Kind: kind, Path: path, Err: err}
}

// Write the human readable lines describing what PadFile did (or didn't do)
func (r *PadResult) Report(w io.Writer) {
	if r.PaddingAdded == 0 {
		fmt.Fprintf(w, "File '%s' is already %d bytes.\n", r.File, r.OriginalSize)
		if r.Oversized {
			fmt.Fprintf(w, "Warning: File size exceeds target size of %d bytes. No padding applied.\n", r.TargetSize)
		}
		return
	}
	fmt.Fprintf(w, "Padding '%s' from %d bytes to %d bytes (+%d bytes).\n",
		r.File, r.OriginalSize, r.TargetSize, r.PaddingAdded)
}

// Write the user facing message for an error out of PadFile
func ReportError(w io.Writer, err error) {
	var perr *PadError
	if errors.As(err, &perr) && perr.Kind == FileNotFound {
		fmt.Fprintf(w, "Error: File not found at '%s'\n", perr.Path)
		return
	}
	if errors.As(err, &perr) {
		err = perr.Err
	}
	fmt.Fprintf(w, "An unexpected error occurred: %s\n", err)
}
