package bootloader

import (
	"fmt"
	"log"

	"github.com/pelletier/go-toml"
)

const (
	DefaultImageFile = "firmware-bootloader.bin"
	DefaultImageSize = 0x8000 // 32 KB, the bootloader's flash region
	DefaultFillByte  = 0xFF
	DefaultHexBase   = 0x08000000 // STM32 FLASH_BASE, where the bootloader lives
	DefaultPort      = "/dev/tty.usbmodem11303"
	DefaultBaudRate  = 115200
)

// Everything both tools need to know before touching a file or port. Built once at
// startup and passed around by value; nothing mutates it afterwards.
type Config struct {
	ImageFile string
	ImageSize int
	FillByte  byte
	HexBase   uint32
	Port      string
	BaudRate  int
}

func DefaultConfig() Config {
	return Config{
		ImageFile: DefaultImageFile,
		ImageSize: DefaultImageSize,
		FillByte:  DefaultFillByte,
		HexBase:   DefaultHexBase,
		Port:      DefaultPort,
		BaudRate:  DefaultBaudRate,
	}
}

// Load a toml file over top of the defaults. Only keys present in the file are
// changed. An empty path just returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	tree, err := toml.LoadFile(path)
	if err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}
	err = config.apply(tree)
	if err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("Loaded config from %s\n", path)
	return config, nil
}

func (c *Config) apply(tree *toml.Tree) error {
	var err error
	pullString(tree, "image_file", &c.ImageFile, &err)
	pullString(tree, "port", &c.Port, &err)
	var size, fill, base, baud int64 = int64(c.ImageSize), int64(c.FillByte), int64(c.HexBase), int64(c.BaudRate)
	pullInt(tree, "image_size", &size, &err)
	pullInt(tree, "fill_byte", &fill, &err)
	pullInt(tree, "hex_base", &base, &err)
	pullInt(tree, "baud_rate", &baud, &err)
	if err != nil {
		return err
	}
	if size < 0 {
		return fmt.Errorf("image_size must not be negative, was %d", size)
	}
	if fill < 0 || fill > 0xFF {
		return fmt.Errorf("fill_byte must fit in a byte, was %d", fill)
	}
	if base < 0 || base > 0xFFFFFFFF {
		return fmt.Errorf("hex_base must fit in 32 bits, was %d", base)
	}
	if baud <= 0 {
		return fmt.Errorf("baud_rate must be positive, was %d", baud)
	}
	c.ImageSize = int(size)
	c.FillByte = byte(fill)
	c.HexBase = uint32(base)
	c.BaudRate = int(baud)
	return nil
}

func pullString(tree *toml.Tree, key string, out *string, err *error) {
	if *err != nil || !tree.Has(key) {
		return
	}
	s, ok := tree.Get(key).(string)
	if !ok {
		*err = fmt.Errorf("%s must be a string", key)
		return
	}
	*out = s
}

func pullInt(tree *toml.Tree, key string, out *int64, err *error) {
	if *err != nil || !tree.Has(key) {
		return
	}
	i, ok := tree.Get(key).(int64)
	if !ok {
		*err = fmt.Errorf("%s must be an integer", key)
		return
	}
	*out = i
}
