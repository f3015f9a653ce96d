package bootloader

import (
	"os"
	"path/filepath"
	"testing"
)

// Write data to a fresh file inside the test's temp directory and return the path
func newTestFile(t *testing.T, filename string, data []byte) string {
	path := filepath.Join(t.TempDir(), filename)
	err := os.WriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("Error writing test file %s: %s", path, err)
	}
	return path
}

func readTestFile(t *testing.T, path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Error reading back %s: %s", path, err)
	}
	return data
}

// Data that can't be mistaken for padding: constantly increasing values, skipping 0xFF
func linearData(length int) []byte {
	data := make([]byte, length)
	for i := range data {
		data[i] = uint8(i % 0xFF)
	}
	return data
}
