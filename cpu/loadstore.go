package cpu

// doLoad executes LB/LBU/LH/LHU/LW/LWU/LD: fetch the operand address,
// translate it for a read, load the width implied by the opcode, and
// sign- or zero-extend into r0.
func (cpu *Cpu) doLoad(inst Inst) (nextIP uint64, err error) {
	nextIP = cpu.Ip + 4

	width, signed := loadShape(inst.Op)
	addr := uint32(uint64(cpu.Register[inst.R1]) + uint64(inst.Offset))

	phys, err := cpu.resolve(addr, false, false)
	if err != nil {
		return 0, err
	}

	raw, ok := cpu.Memory.Load(phys, width)
	if !ok {
		return 0, ErrOutOfBounds
	}

	value := raw
	if signed {
		value = signExtend(raw, width)
	}

	cpu.setReg(inst.R0, value)
	return nextIP, nil
}

// doStore executes SB/SH/SW/SD: translate the operand address for a
// write and store the low width bytes of r0.
func (cpu *Cpu) doStore(inst Inst) (nextIP uint64, err error) {
	nextIP = cpu.Ip + 4

	width := storeWidth(inst.Op)
	addr := uint32(uint64(cpu.Register[inst.R1]) + uint64(inst.Offset))

	phys, err := cpu.resolve(addr, true, false)
	if err != nil {
		return 0, err
	}

	if !cpu.Memory.Store(phys, cpu.Register[inst.R0], width) {
		return 0, ErrOutOfBounds
	}

	return nextIP, nil
}

// loadShape returns the access width in bytes and whether the load
// sign-extends, for each of the seven load opcodes.
func loadShape(op Opcode) (width int, signed bool) {
	switch op {
	case LB:
		return 1, true
	case LBU:
		return 1, false
	case LH:
		return 2, true
	case LHU:
		return 2, false
	case LW:
		return 4, true
	case LWU:
		return 4, false
	case LD:
		return 8, false
	default:
		return 0, false
	}
}

// storeWidth returns the access width in bytes for each of the four
// store opcodes.
func storeWidth(op Opcode) int {
	switch op {
	case SB:
		return 1
	case SH:
		return 2
	case SW:
		return 4
	case SD:
		return 8
	default:
		return 0
	}
}

// signExtend replicates bit (8*width-1) of raw into the bits above it,
// so that a narrower stored value round-trips to the correct negative
// 64-bit value on a signed load.
func signExtend(raw uint64, width int) uint64 {
	if width >= 8 {
		return raw
	}
	shift := uint(64 - 8*width)
	return uint64(int64(raw<<shift) >> shift)
}
