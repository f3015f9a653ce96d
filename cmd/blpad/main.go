package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/blfw/bltools/bootloader"
	"github.com/blfw/bltools/internal/cliutil"
)

const (
	AppVersion = "0.1.0"
)

var cli struct {
	File    string           `arg:"" optional:"" type:"path" help:"Bootloader image to pad in place (default firmware-bootloader.bin)"`
	Size    string           `short:"s" help:"Target size in bytes, hex ok (default 0x8000)"`
	Fill    string           `short:"f" help:"Fill byte, hex ok (default 0xFF)"`
	Config  string           `type:"existingfile" short:"c" help:"TOML file overriding the compiled-in defaults"`
	HexOut  string           `type:"path" help:"Also write the resulting image as intel hex"`
	Base    string           `help:"Flash address for --hex-out (default 0x08000000)"`
	Json    bool             `help:"Print the result as json instead of text"`
	Version kong.VersionFlag `help:"Show version information"`
}

// Fold command line overrides into the loaded config. Anything left empty keeps
// the config (or compiled-in) value.
func buildConfig() bootloader.Config {
	config, err := bootloader.LoadConfig(cli.Config)
	cliutil.FatalIfErr("blpad", "load config", err)
	if cli.File != "" {
		config.ImageFile = cli.File
	}
	if cli.Size != "" {
		size, err := cliutil.ParseNumber(cli.Size, 31)
		cliutil.FatalIfErr("blpad", "parse size", err)
		config.ImageSize = int(size)
	}
	if cli.Fill != "" {
		fill, err := cliutil.ParseNumber(cli.Fill, 8)
		cliutil.FatalIfErr("blpad", "parse fill byte", err)
		config.FillByte = byte(fill)
	}
	if cli.Base != "" {
		base, err := cliutil.ParseNumber(cli.Base, 32)
		cliutil.FatalIfErr("blpad", "parse base address", err)
		config.HexBase = uint32(base)
	}
	return config
}

func writeHex(config bootloader.Config, outfile string) {
	image, err := os.ReadFile(config.ImageFile)
	cliutil.FatalIfErr(config.ImageFile, "read padded image", err)
	file, err := os.Create(outfile)
	cliutil.FatalIfErr(outfile, "create hex file", err)
	defer file.Close()
	err = bootloader.BinToHex(image, config.HexBase, file)
	cliutil.FatalIfErr(outfile, "convert image to hex", err)
	log.Printf("Wrote %d bytes at 0x%08X as hex to %s\n", len(image), config.HexBase, outfile)
}

func main() {
	kong.Parse(&cli,
		kong.Name("blpad"),
		kong.ShortUsageOnError(),
		kong.Description("Pad a bootloader image out to the size of its flash region"),
		kong.Vars{
			"version": AppVersion,
		},
	)
	config := buildConfig()

	if cli.Json {
		result, err := bootloader.PadFile(config.ImageFile, config.ImageSize, config.FillByte)
		if err != nil {
			bootloader.ReportError(os.Stdout, err)
			return
		}
		cliutil.PrintJson(result)
	} else {
		// Report lines come out before the write, errors after them. Neither is fatal
		_, err := bootloader.PadFileReport(config.ImageFile, config.ImageSize, config.FillByte, os.Stdout)
		if err != nil {
			bootloader.ReportError(os.Stdout, err)
			return
		}
	}
	if cli.HexOut != "" {
		writeHex(config, cli.HexOut)
	}
}
