package hw

import (
	"fmt"
	"strings"

	"nescore/emu/log"
	"nescore/hw/hwio"
)

//go:generate go tool stringer -type=Button -trimprefix=Button -output=input_string.go

// Button is a button of the standard NES controller. Values are the order
// in which the controller reports them.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight

	NumButtons
)

// ParseButton returns the button with the given case-insensitive name.
func ParseButton(name string) (Button, error) {
	for b := range NumButtons {
		if strings.EqualFold(b.String(), name) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// StandardController is the standard NES joypad.
type StandardController struct {
	buttons uint8 // bit n is set when Button n is pressed
}

func (sc *StandardController) SetButton(b Button, pressed bool) {
	hwio.SetBit8To(&sc.buttons, uint(b), pressed)
}

func (sc *StandardController) Pressed(b Button) bool {
	return hwio.GetBit8(sc.buttons, uint(b))
}

// state returns the controller shift register content.
func (sc *StandardController) state() uint8 {
	return sc.buttons
}

// InputPorts handles the $4016/$4017 registers, connected to a standard
// controller on each port.
type InputPorts struct {
	In  hwio.Reg8 // $4016: strobe (write), port 1 data (read)
	Out hwio.Reg8 // $4017: port 2 data (read)

	Pads [2]StandardController

	strobe bool
	state  [2]uint8 // state shift registers
}

func (ip *InputPorts) initRegs() {
	ip.In = hwio.Reg8{Name: "IN", ReadCb: ip.ReadIN, PeekCb: ip.peekIN, WriteCb: ip.WriteIN}
	ip.Out = hwio.Reg8{Name: "OUT", ReadCb: ip.ReadOUT, PeekCb: ip.peekOUT}
}

func (ip *InputPorts) reset() {
	ip.strobe = false
	ip.state = [2]uint8{}
}

// regval shifts out the next bit of a port.
func (ip *InputPorts) regval(port int) uint8 {
	if ip.strobe {
		ip.loadstate()
	}

	ret := ip.state[port] & 1
	ip.state[port] >>= 1

	// After 8 bits are read, all subsequent bits will report 1 on a standard
	// NES controller.
	ip.state[port] |= 0x80

	// Emulate open bus behavior.
	return 0x40 | ret
}

// capture state of all connected input devices.
func (ip *InputPorts) loadstate() {
	ip.state[0] = ip.Pads[0].state()
	ip.state[1] = ip.Pads[1].state()
}

// In: $4016
func (ip *InputPorts) WriteIN(old, val uint8) {
	prev := ip.strobe
	ip.strobe = val&1 == 1
	if prev != ip.strobe {
		log.ModInput.DebugZ("strobe").Bool("on", ip.strobe).End()
	}
	// While strobe is high, the shift registers are continuously reloaded.
	if ip.strobe || prev {
		ip.loadstate()
	}
}

func (ip *InputPorts) ReadIN(uint8) uint8 {
	return ip.regval(0)
}

func (ip *InputPorts) peekIN(uint8) uint8 {
	return 0x40 | ip.state[0]&1
}

// Out: $4017
func (ip *InputPorts) ReadOUT(uint8) uint8 {
	return ip.regval(1)
}

func (ip *InputPorts) peekOUT(uint8) uint8 {
	return 0x40 | ip.state[1]&1
}
