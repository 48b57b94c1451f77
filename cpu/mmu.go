package cpu

// resolve translates a 32-bit logical address to a 32-bit physical
// address through the two-level page table rooted at protectedReg[RPT],
// enforcing presence, protection, writability, and executability.
//
// When PAGING_ENABLE is clear the identity map is used and no page
// table is consulted.
func (cpu *Cpu) resolve(address uint32, write, jump bool) (physical uint32, err error) {
	if cpu.ProtectedReg[EFLAGS]&FlagPagingEnable == 0 {
		return address, nil
	}

	rootIndex := (address >> 22) & pageIndexMask
	pageIndex := (address >> 12) & pageIndexMask
	offset := address & pageOffMask

	rootAddr := uint32(cpu.ProtectedReg[RPT]) + rootIndex
	rootEntry, ok := cpu.Memory.Load(rootAddr, 4)
	if !ok {
		return 0, raise(PageFault, faultInfo(PageOccupied, address))
	}
	root := uint32(rootEntry)
	if failing, bad := cpu.checkEntry(root, write, jump); bad {
		return 0, raise(PageFault, faultInfo(failing, address))
	}
	root |= PageAccessed
	cpu.Memory.Store(rootAddr, uint64(root), 4)

	pageTableBase := root & PageFrameMask
	pageAddr := pageTableBase + pageIndex
	pageEntry, ok := cpu.Memory.Load(pageAddr, 4)
	if !ok {
		return 0, raise(PageFault, faultInfo(PageOccupied, address))
	}
	page := uint32(pageEntry)
	if failing, bad := cpu.checkEntry(page, write, jump); bad {
		return 0, raise(PageFault, faultInfo(failing, address))
	}
	page |= PageAccessed
	if write {
		page |= PageModified
	}
	cpu.Memory.Store(pageAddr, uint64(page), 4)

	frame := page & PageFrameMask
	return frame + offset, nil
}

// checkEntry validates a page-table entry, in the order the invariants
// are checked: OCCUPIED, then (if protection is enforced) PROTECTED,
// WRITABLE for writes, and EXECUTABLE for fetches. It returns the mask
// of the first failing check.
func (cpu *Cpu) checkEntry(entry uint32, write, jump bool) (failing uint32, bad bool) {
	protectedMode := cpu.ProtectedReg[EFLAGS]&FlagProtectedEnable != 0

	switch {
	case entry&PageOccupied == 0:
		return PageOccupied, true
	case protectedMode && entry&PageProtected != 0:
		return PageProtected, true
	case protectedMode && write && entry&PageWritable == 0:
		return PageWritable, true
	case protectedMode && jump && entry&PageExecutable == 0:
		return PageExecutable, true
	default:
		return 0, false
	}
}

// faultInfo packs the failing mask bit and the faulting address into
// the Interrupt.Info field, per the PAGE_FAULT ABI.
func faultInfo(failingMask uint32, address uint32) uint64 {
	return uint64(failingMask)<<32 | uint64(address)
}
