package cpu

import "errors"

// doMisc executes MOV, GEF, and INT.
func (cpu *Cpu) doMisc(inst Inst) (nextIP uint64, err error) {
	nextIP = cpu.Ip + 4

	switch inst.Op {
	case MOV:
		cpu.setReg(inst.R0, uint64(cpu.Register[inst.R1])+uint64(inst.Offset))

	case GEF:
		cpu.setReg(inst.R0, cpu.ProtectedReg[EFLAGS])

	case INT:
		code := uint64(cpu.Register[inst.R1]) + uint64(inst.Offset)
		if code < uint64(SoftwareStart) || code > 0xFF {
			return 0, errors.Join(ErrOpcodeInt, raise(InstructionFault, 0x3))
		}
		return 0, raise(IntCode(code), 0)

	default:
		return 0, errors.Join(ErrOpcodeUnknown, raise(InstructionFault, 0))
	}

	return nextIP, nil
}
