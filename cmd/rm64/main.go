// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command rm64 loads one or more flat binary images into a register
// machine's memory and runs its clock until a tick limit is reached or
// a double fault halts it.
// It is an illustrative embedder, not part of the architecture: any
// host program that owns a *cpu.Cpu and drives Tick works the same way.
package main

import (
	"flag"
	"fmt"
	"iter"
	"log"
	"os"

	"github.com/ezrec/rm64/cpu"
	"github.com/ezrec/rm64/internal"
)

func main() {
	var memSize int
	var verbose bool
	var maxTicks int
	var base uint
	var images imageFlag

	flag.IntVar(&memSize, "m", 1<<20, "physical memory size in bytes")
	flag.BoolVar(&verbose, "v", false, "verbose mode: trace every retired instruction")
	flag.IntVar(&maxTicks, "n", 0, "stop after this many ticks (0: run until a double fault)")
	flag.UintVar(&base, "b", 0, "physical address the concatenated images are loaded at")
	flag.Var(&images, "i", "flat image to load after reset (repeatable; loaded in order, back to back)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}

	machine := cpu.NewCpu(memSize)
	machine.Verbose = verbose
	machine.Reset()

	if err := loadImages(machine, uint32(base), images.paths); err != nil {
		log.Fatal(err)
	}

	for ticks := 0; maxTicks == 0 || ticks < maxTicks; ticks++ {
		if err := machine.Tick(); err != nil {
			log.Printf("%v", machine)
			log.Fatalf("halted: %v", err)
		}
	}

	if verbose {
		fmt.Print(machine)
	}
}

// loadImages reads every named image, concatenates their byte streams
// in flag order into one contiguous sequence (so a program and its
// data segments can be supplied as separate files), and stores it
// starting at base.
func loadImages(machine *cpu.Cpu, base uint32, paths []string) error {
	seqs := make([]iter.Seq[byte], len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}
		seqs[i] = byteSeq(data)
	}

	addr := base
	for b := range internal.IterSeqConcat(seqs...) {
		if !machine.Memory.Store(addr, uint64(b), 1) {
			return fmt.Errorf("image overruns memory at %#08x", addr)
		}
		addr++
	}
	return nil
}

func byteSeq(data []byte) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, b := range data {
			if !yield(b) {
				return
			}
		}
	}
}

// imageFlag accumulates repeated -i file arguments.
type imageFlag struct {
	paths []string
}

func (l *imageFlag) String() string {
	return fmt.Sprint(l.paths)
}

func (l *imageFlag) Set(value string) error {
	l.paths = append(l.paths, value)
	return nil
}
