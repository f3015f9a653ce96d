package bootloader

import (
	"testing"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

func TestPortInfoFromDetails(t *testing.T) {
	info := portInfoFromDetails(&enumerator.PortDetails{
		Name:  "/dev/ttyACM0",
		IsUSB: true,
		VID:   "0483",
		PID:   "5740",
	})
	if info.VidPid != "VID:PID=0483:5740" {
		t.Fatalf("Unexpected vidpid: %s", info.VidPid)
	}
	if info.SmallString() != "/dev/ttyACM0(VID:PID=0483:5740)" {
		t.Fatalf("Unexpected small string: %s", info.SmallString())
	}
	plain := portInfoFromDetails(&enumerator.PortDetails{Name: "/dev/ttyS0"})
	if plain.VidPid != "" || plain.SmallString() != "/dev/ttyS0" {
		t.Fatalf("Non-usb port should have no vidpid: %+v", plain)
	}
}

func TestSegmentMode(t *testing.T) {
	mode := SegmentMode(DefaultBaudRate)
	if mode.BaudRate != 115200 || mode.DataBits != 8 ||
		mode.Parity != serial.NoParity || mode.StopBits != serial.OneStopBit {
		t.Fatalf("Unexpected serial mode: %+v", mode)
	}
}
