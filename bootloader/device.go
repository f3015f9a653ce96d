package bootloader

import (
	"fmt"
	"log"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// What the enumerator could tell us about a serial port
type PortInfo struct {
	Port         string
	VidPid       string
	Product      string
	SerialNumber string
	IsUSB        bool
}

// Small string representing the port, for logging
func (p *PortInfo) SmallString() string {
	if p.VidPid == "" {
		return p.Port
	}
	return fmt.Sprintf("%s(%s)", p.Port, p.VidPid)
}

func portInfoFromDetails(d *enumerator.PortDetails) PortInfo {
	info := PortInfo{
		Port:         d.Name,
		Product:      d.Product,
		SerialNumber: d.SerialNumber,
		IsUSB:        d.IsUSB,
	}
	if d.IsUSB {
		info.VidPid = fmt.Sprintf("VID:PID=%s:%s", strings.ToUpper(d.VID), strings.ToUpper(d.PID))
	}
	return info
}

// List every serial port on the system, USB ones first (that's where dev boards show up)
func ListPorts() ([]PortInfo, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}
	usb := make([]PortInfo, 0, len(ports))
	other := make([]PortInfo, 0)
	for _, port := range ports {
		info := portInfoFromDetails(port)
		if info.IsUSB {
			usb = append(usb, info)
		} else {
			other = append(other, info)
		}
	}
	return append(usb, other...), nil
}

// The serial settings the bootloader expects: 8N1 at the given baud. Read timeout is
// never set, so reads block until data shows up.
func SegmentMode(baud int) *serial.Mode {
	return &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

func OpenSerial(port string, baud int) (serial.Port, error) {
	sercon, err := serial.Open(port, SegmentMode(baud))
	if err != nil {
		return nil, err
	}
	log.Printf("Opened %s at %d baud\n", port, baud)
	return sercon, nil
}
