package bootloader

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.ImageFile != "firmware-bootloader.bin" || config.ImageSize != 32768 || config.FillByte != 0xFF {
		t.Fatalf("Unexpected padder defaults: %+v", config)
	}
	if config.Port != "/dev/tty.usbmodem11303" || config.BaudRate != 115200 {
		t.Fatalf("Unexpected serial defaults: %+v", config)
	}
	if config.HexBase != 0x08000000 {
		t.Fatalf("Unexpected hex base: 0x%X", config.HexBase)
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Error loading no config: %s", err)
	}
	if config != DefaultConfig() {
		t.Fatalf("No config should give defaults, got %+v", config)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := newTestFile(t, "bltools.toml", []byte(`
image_file = "other.bin"
image_size = 0x4000
fill_byte = 0
port = "/dev/ttyACM0"
`))
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Error loading config: %s", err)
	}
	if config.ImageFile != "other.bin" || config.ImageSize != 0x4000 || config.FillByte != 0 {
		t.Fatalf("Padder overrides not applied: %+v", config)
	}
	if config.Port != "/dev/ttyACM0" {
		t.Fatalf("Port override not applied: %s", config.Port)
	}
	// Untouched keys keep their defaults
	if config.BaudRate != DefaultBaudRate || config.HexBase != DefaultHexBase {
		t.Fatalf("Defaults lost: %+v", config)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	check := func(contents string) {
		path := newTestFile(t, "bad.toml", []byte(contents))
		_, err := LoadConfig(path)
		if err == nil {
			t.Fatalf("Expected error for config: %s", contents)
		}
	}
	check(`fill_byte = 256`)
	check(`fill_byte = "ff"`)
	check(`image_size = -1`)
	check(`baud_rate = 0`)
	check(`port = 12`)
	check(`this is not toml`)
}
