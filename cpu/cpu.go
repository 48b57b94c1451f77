package cpu

import (
	"errors"
	"fmt"
	"log"
)

// pendingInterrupt is a hardware interrupt injected by an external
// driver (timer, MMIO device) between ticks, waiting to be serviced.
type pendingInterrupt struct {
	code IntCode
	info uint64
}

// Cpu is the architected state of the register machine: the general
// and protected register files, the instruction pointer, the flat
// memory array, and the bookkeeping the interrupt controller needs to
// know it is already mid-dispatch.
//
// The translator, decoder, and execution units below are all methods
// on *Cpu; there is no free-standing global state.
type Cpu struct {
	Verbose bool // gates log.Printf tracing of each executed instruction.

	Register      [NumRegs]uint64
	ProtectedReg  [NumProtectedRegs]uint64
	Ip            uint64
	Memory        *Memory

	handlingInterrupt bool
	pending           *pendingInterrupt

	Ticks int // instructions retired since the last Reset.
}

// NewCpu allocates a Cpu with a memory array of the given size, in the
// reset state.
func NewCpu(memSize int) *Cpu {
	cpu := &Cpu{
		Memory: NewMemory(memSize),
	}
	cpu.Reset()
	return cpu
}

// Reset zeroes every register (general and protected, including
// EFLAGS) and the instruction pointer, and clears interrupt-handling
// state. The machine starts in privileged mode with paging and
// interrupts disabled. Memory contents are left untouched — loading a
// program image is the embedder's job.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.ProtectedReg[:])
	cpu.Ip = 0
	cpu.handlingInterrupt = false
	cpu.pending = nil
	cpu.Ticks = 0
}

// RaiseExternal records a pending hardware interrupt, to be serviced at
// the top of the next Tick if interrupts are enabled and no interrupt
// is already being handled. This is the defined hook external drivers
// (timers, MMIO) use to inject asynchronous events; it holds a single
// pending slot, matching the single-threaded, one-in-flight model of
// the clock.
func (cpu *Cpu) RaiseExternal(code IntCode, info uint64) error {
	if code.IsFault() || code.IsSoftware() {
		return ErrExternalRange
	}
	cpu.pending = &pendingInterrupt{code: code, info: info}
	return nil
}

// Tick executes a single instruction cycle to completion, including
// any interrupt dispatch it triggers. A returned error is only
// non-nil for a double fault, which is terminal — the caller should
// stop ticking.
func (cpu *Cpu) Tick() error {
	if !cpu.handlingInterrupt && cpu.pending != nil {
		if cpu.ProtectedReg[EFLAGS]&FlagInterruptEnable != 0 {
			p := cpu.pending
			cpu.pending = nil
			if err := cpu.enterInterrupt(p.code, p.info, cpu.Ip); err != nil {
				return err
			}
			cpu.Register[Z] = 0
			return nil
		}
	}

	word, err := cpu.fetch()
	if err == nil {
		inst := Decode(word)
		if cpu.Verbose {
			log.Printf("%#08x: %v", cpu.Ip, inst.Op)
		}

		var nextIP uint64
		nextIP, err = cpu.execute(inst)
		if err == nil {
			cpu.Ip = nextIP
			cpu.Ticks++
			cpu.Register[Z] = 0
			return nil
		}
		err = &ErrBadInst{Word: word, Inst: inst, Err: err}
	}

	return cpu.recover(err)
}

// fetch reads the 32-bit instruction word at IP, through the
// translator, with the executable-permission check enabled.
func (cpu *Cpu) fetch() (word uint32, err error) {
	phys, err := cpu.resolve(uint32(cpu.Ip), false, true)
	if err != nil {
		return 0, err
	}
	v, ok := cpu.Memory.Load(phys, 4)
	if !ok {
		return 0, ErrOutOfBounds
	}
	return uint32(v), nil
}

// execute dispatches a decoded instruction to its execution unit,
// keyed by opcode range, in the same order the reference dispatcher
// checks them: load, store, alu, branch, privileged, misc.
func (cpu *Cpu) execute(inst Inst) (nextIP uint64, err error) {
	u, ok := classify(inst.Op)
	if !ok {
		return 0, errors.Join(ErrOpcodeUnknown, raise(InstructionFault, 0))
	}

	switch u {
	case unitLoad:
		return cpu.doLoad(inst)
	case unitStore:
		return cpu.doStore(inst)
	case unitStack:
		return cpu.doStack(inst)
	case unitAlu:
		return cpu.doAlu(inst)
	case unitBranch:
		return cpu.doBranch(inst)
	case unitPrivileged:
		return cpu.doPrivileged(inst)
	default:
		return cpu.doMisc(inst)
	}
}

// recover implements spec step 4 of the clock: an *Interrupt drives
// interrupt entry, a bounds error is swallowed with only the IP
// advancing, and anything else (a double fault) propagates to the
// caller as terminal.
func (cpu *Cpu) recover(err error) error {
	var intr *Interrupt
	if errors.As(err, &intr) {
		if entryErr := cpu.enterInterrupt(intr.Code, intr.Info, cpu.Ip); entryErr != nil {
			return entryErr
		}
		cpu.Register[Z] = 0
		return nil
	}

	if errors.Is(err, ErrOutOfBounds) {
		cpu.Ip += 4
		cpu.Register[Z] = 0
		return nil
	}

	return err
}

// enterInterrupt implements the interrupt dispatch protocol of §4.10:
// mask protection and further hardware interrupts, swap to the
// privileged stack, push the resume state, and vector through the
// in-memory jump table. It is the sole place handlingInterrupt is set
// true; IRET is the sole place it is cleared.
func (cpu *Cpu) enterInterrupt(code IntCode, info uint64, faultIP uint64) error {
	if cpu.handlingInterrupt {
		return ErrDoubleFault
	}
	cpu.handlingInterrupt = true

	savedEflags := cpu.ProtectedReg[EFLAGS]
	savedIP := faultIP
	if !code.IsFault() {
		savedIP += 4
	}

	cpu.ProtectedReg[EFLAGS] &^= FlagProtectedEnable | FlagInterruptEnable

	cpu.ProtectedReg[USP] = cpu.Register[SP]
	cpu.Register[SP] = cpu.ProtectedReg[PSP]

	cpu.physPush(savedIP)
	cpu.physPush(savedEflags)

	vectorAddr := uint32(cpu.ProtectedReg[IJT]) + uint32(code)*8
	phys, err := cpu.resolve(vectorAddr, false, false)
	if err != nil {
		return ErrDoubleFault
	}
	v, ok := cpu.Memory.Load(phys, 4)
	if !ok {
		return ErrDoubleFault
	}

	cpu.Ip = uint64(uint32(v))

	if cpu.Verbose {
		log.Printf("cpu: interrupt %v -> vector %#08x", code, cpu.Ip)
	}

	return nil
}

// physPush writes value below SP, bypassing the translator: the
// privileged interrupt stack is physically addressed per §4.10.
func (cpu *Cpu) physPush(value uint64) {
	cpu.Register[SP] -= 8
	cpu.Memory.Store(uint32(cpu.Register[SP]), value, 8)
}

// physPop reads the 8 bytes at SP, bypassing the translator, and
// advances SP past them.
func (cpu *Cpu) physPop() (value uint64, ok bool) {
	value, ok = cpu.Memory.Load(uint32(cpu.Register[SP]), 8)
	if ok {
		cpu.Register[SP] += 8
	}
	return
}

// setReg writes to a general register, silently discarding writes to
// the zero register Z.
func (cpu *Cpu) setReg(r Reg, value uint64) {
	if r == Z {
		return
	}
	cpu.Register[r] = value
}

// String returns a formatted dump of architected state, for use in
// debugging and test failure messages.
func (cpu *Cpu) String() string {
	flags := cpu.ProtectedReg[EFLAGS]
	text := fmt.Sprintf("% 5s: %#016x  handling:%v\n", "ip", cpu.Ip, cpu.handlingInterrupt)
	text += fmt.Sprintf("% 5s: %#016x  c:%v o:%v z:%v n:%v ie:%v pg:%v pe:%v\n",
		"flags", flags,
		flags&FlagCarry != 0, flags&FlagOverflow != 0,
		flags&FlagZero != 0, flags&FlagNegative != 0,
		flags&FlagInterruptEnable != 0, flags&FlagPagingEnable != 0, flags&FlagProtectedEnable != 0,
	)
	for r := A; r <= Z; r++ {
		text += fmt.Sprintf("% 5s: %#016x\n", r, cpu.Register[r])
	}
	return text
}
