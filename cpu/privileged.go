package cpu

import "errors"

// doPrivileged executes PMOV and IRET. Either raises INSTRUCTION_FAULT
// with info=0x3 if executed while PROTECTED_ENABLE is set (user mode):
// the mode check happens before either opcode is distinguished, as in
// the reference dispatcher.
func (cpu *Cpu) doPrivileged(inst Inst) (nextIP uint64, err error) {
	if cpu.ProtectedReg[EFLAGS]&FlagProtectedEnable != 0 {
		return 0, raise(InstructionFault, 0x3)
	}

	switch inst.Op {
	case PMOV:
		value := uint64(cpu.Register[inst.R1]) + uint64(inst.Offset)
		cpu.ProtectedReg[ProtectedReg(inst.R0)] = value
		return cpu.Ip + 4, nil

	case IRET:
		eflags, ok := cpu.physPop()
		if !ok {
			return 0, ErrOutOfBounds
		}
		retIP, ok := cpu.physPop()
		if !ok {
			return 0, ErrOutOfBounds
		}

		cpu.ProtectedReg[PSP] = cpu.Register[SP]
		cpu.Register[SP] = cpu.ProtectedReg[USP]

		cpu.ProtectedReg[EFLAGS] = eflags | FlagProtectedEnable | FlagInterruptEnable
		cpu.handlingInterrupt = false

		return retIP, nil

	default:
		return 0, errors.Join(ErrOpcodePriv, raise(InstructionFault, 0))
	}
}
