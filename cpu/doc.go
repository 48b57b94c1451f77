// Package cpu implements the register-machine core: a 64-bit CPU model
// with a two-level paged address translator, a fixed 32-bit instruction
// encoding, and a precise interrupt/fault dispatch protocol.
//
// All architected state lives in a single Cpu value. The translator,
// decoder, and execution units are stateless methods on *Cpu rather
// than free functions over package globals: Tick fetches, decodes, and
// dispatches one instruction to completion, including any interrupt
// entry it triggers.
package cpu
