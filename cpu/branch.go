package cpu

// doBranch executes JMP/JLT/JGT/JZR/JIF: compute the target from
// registers[r1]+offset and take it when the opcode's condition holds,
// otherwise advance normally.
func (cpu *Cpu) doBranch(inst Inst) (nextIP uint64, err error) {
	target := uint64(cpu.Register[inst.R1]) + uint64(inst.Offset)

	flags := cpu.ProtectedReg[EFLAGS]
	zero := flags&FlagZero != 0
	negative := flags&FlagNegative != 0

	var taken bool
	switch inst.Op {
	case JMP:
		taken = true
	case JGT:
		taken = !zero && !negative
	case JLT:
		taken = negative
	case JZR:
		taken = zero
	case JIF:
		taken = cpu.Register[inst.R0] != 0
	default:
		return 0, raise(InstructionFault, 0)
	}

	if taken {
		return target, nil
	}
	return cpu.Ip + 4, nil
}
