package hw

import (
	"nescore/emu/log"
	"nescore/hw/hwio"
)

// oamDMA handles the DMA transfer of OAM (sprites attributes) to the PPU.
//
// Writing page XX to OAMDMA copies the 256 bytes at $XX00-$XXFF into OAM,
// starting at OAMADDR. The CPU is suspended during the transfer.
type oamDMA struct {
	OAMDMA hwio.Reg8 // $4014

	page    uint8
	pending bool
}

func (dma *oamDMA) initRegs() {
	dma.OAMDMA = hwio.Reg8{
		Name:    "OAMDMA",
		Flags:   hwio.WriteOnlyFlag,
		WriteCb: dma.WriteOAMDMA,
	}
}

func (dma *oamDMA) reset() {
	dma.page = 0
	dma.pending = false
}

func (dma *oamDMA) WriteOAMDMA(_, val uint8) {
	log.ModDMA.DebugZ("Write to OAMDMA").Hex8("page", val).End()
	dma.page = val
	dma.pending = true
}

// transfer performs the pending transfer through 256 bus reads and returns
// the number of CPU cycles it took: 513, plus one alignment cycle when the
// transfer starts on an odd CPU cycle.
func (dma *oamDMA) transfer(bus hwio.BankIO8, oam *[256]uint8, oamaddr uint8, cpuCycles int64) int {
	dma.pending = false

	base := uint16(dma.page) << 8
	for i := range 256 {
		oam[oamaddr+uint8(i)] = bus.Read8(base+uint16(i), false)
	}

	stall := 513
	if cpuCycles&1 == 1 {
		stall++
	}

	log.ModDMA.DebugZ("OAM DMA transfer").
		Hex8("page", dma.page).
		Hex8("oamaddr", oamaddr).
		Int("stall", stall).
		End()
	return stall
}
