package main

import (
	"io"
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
	Port    string           `arg:"" optional:"" help:"Serial device the bootloader talks on (default /dev/tty.usbmodem11303)"`
	Baud    int              `short:"b" help:"Baud rate (default 115200)"`
	Config  string           `type:"existingfile" short:"c" help:"TOML file overriding the compiled-in defaults"`
	Count   int              `short:"n" help:"Stop after this many segments (default: run forever)"`
	ShowCrc bool             `help:"Also print the computed CRC-8 and segment kind (nothing is rejected)"`
	List    bool             `help:"List serial ports as json and exit"`
	Version kong.VersionFlag `help:"Show version information"`
}

func listPorts() {
	ports, err := bootloader.ListPorts()
	cliutil.FatalIfErr("segdump", "list serial ports", err)
	log.Printf("Found %d serial ports\n", len(ports))
	cliutil.PrintJson(ports)
}

// Dump segments off the port, closing it before returning either way. Callers
// bail with log.Fatalf on error, which would skip any deferred close.
func dumpPort(sercon io.ReadCloser, out io.Writer, opts bootloader.DumpOptions) (int, error) {
	count, err := bootloader.DumpSegments(sercon, out, opts)
	cerr := sercon.Close()
	if err == nil {
		err = cerr
	}
	return count, err
}

func main() {
	kong.Parse(&cli,
		kong.Name("segdump"),
		kong.ShortUsageOnError(),
		kong.Description("Print every field of each 35 byte segment read from the bootloader's serial link"),
		kong.Vars{
			"version": AppVersion,
		},
	)
	if cli.List {
		listPorts()
		return
	}
	config, err := bootloader.LoadConfig(cli.Config)
	cliutil.FatalIfErr("segdump", "load config", err)
	if cli.Port != "" {
		config.Port = cli.Port
	}
	if cli.Baud > 0 {
		config.BaudRate = cli.Baud
	}

	sercon, err := bootloader.OpenSerial(config.Port, config.BaudRate)
	cliutil.FatalIfErr(config.Port, "open serial port", err)

	count, err := dumpPort(sercon, os.Stdout, bootloader.DumpOptions{
		Limit:   cli.Count,
		ShowCrc: cli.ShowCrc,
	})
	cliutil.FatalIfErr(config.Port, "dump segments", err)
	log.Printf("Read %d segments from %s\n", count, config.Port)
}
