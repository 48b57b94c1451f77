package cpu

// Reg indexes the 16 general-purpose 64-bit registers.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	A  = Reg(0) // a
	B  = Reg(1) // b
	C  = Reg(2) // c
	D  = Reg(3) // d
	E  = Reg(4) // e
	F  = Reg(5) // f
	G  = Reg(6) // g
	H  = Reg(7) // h
	I  = Reg(8) // i
	J  = Reg(9) // j
	K  = Reg(10) // k
	X  = Reg(11) // x
	Y  = Reg(12) // y
	SP = Reg(13) // sp
	BP = Reg(14) // bp
	Z  = Reg(15) // z
)

// NumRegs is the size of the general-purpose register file.
const NumRegs = 16

// ProtectedReg indexes the 16 protected registers. Only the first five
// are architecturally defined; the rest are reserved.
type ProtectedReg int

//go:generate go tool stringer -linecomment -type=ProtectedReg
const (
	EFLAGS = ProtectedReg(0) // eflags
	USP    = ProtectedReg(1) // usp
	PSP    = ProtectedReg(2) // psp
	IJT    = ProtectedReg(3) // ijt
	RPT    = ProtectedReg(4) // rpt
)

// NumProtectedRegs is the size of the protected register file.
const NumProtectedRegs = 16

// EFLAGS bit masks.
const (
	FlagCarry    = uint64(0x1)
	FlagOverflow = uint64(0x2)
	FlagZero     = uint64(0x4)
	FlagNegative = uint64(0x8)

	FlagInterruptEnable = uint64(0x2000_0000_0000_0000)
	FlagPagingEnable    = uint64(0x4000_0000_0000_0000)
	FlagProtectedEnable = uint64(0x8000_0000_0000_0000)
)

// Page-table entry bit masks (both root and leaf entries share this layout).
const (
	PageFrameMask  = uint32(0xFFFF_F000)
	PageOccupied   = uint32(0x01)
	PageProtected  = uint32(0x02)
	PageModified   = uint32(0x04)
	PageWritable   = uint32(0x08)
	PageExecutable = uint32(0x10)
	PageAccessed   = uint32(0x20)
)

const (
	pageFrameBits = 12
	pageDirBits   = 10
	pageOffMask   = uint32(0xFFF)
	pageIndexMask = uint32(0x3FF)
)
