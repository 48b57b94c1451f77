package cpu

import "errors"

// doStack executes PUSH and POP. Stack addresses are logical — they
// go through the translator, unlike the physically-addressed
// privileged stack the interrupt controller uses for entry/return.
func (cpu *Cpu) doStack(inst Inst) (nextIP uint64, err error) {
	nextIP = cpu.Ip + 4

	switch inst.Op {
	case PUSH:
		value := uint64(cpu.Register[inst.R1]) + uint64(inst.Offset)
		newSP := cpu.Register[SP] - 8

		phys, err := cpu.resolve(uint32(newSP), true, false)
		if err != nil {
			return 0, err
		}
		if !cpu.Memory.Store(phys, value, 8) {
			return 0, errors.Join(ErrOpcodeStack, ErrOutOfBounds)
		}
		cpu.Register[SP] = newSP

	case POP:
		phys, err := cpu.resolve(uint32(cpu.Register[SP]), false, false)
		if err != nil {
			return 0, err
		}
		v, ok := cpu.Memory.Load(phys, 8)
		if !ok {
			return 0, errors.Join(ErrOpcodeStack, ErrStackEmpty, ErrOutOfBounds)
		}
		cpu.setReg(inst.R0, v)
		cpu.Register[SP] += 8

	default:
		return 0, errors.Join(ErrOpcodeStack, raise(InstructionFault, 0))
	}

	return nextIP, nil
}
