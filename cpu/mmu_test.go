package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdentityWhenPagingDisabled(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(256)
	phys, err := cpu.resolve(0x42, false, false)
	assert.NoError(err)
	assert.Equal(uint32(0x42), phys)
}

func TestResolveTwoLevelWalk(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(0x10000)
	cpu.ProtectedReg[EFLAGS] = FlagPagingEnable
	cpu.ProtectedReg[RPT] = 0x1000

	const rootIndex, pageIndex, off = uint32(2), uint32(3), uint32(0x10)
	address := (rootIndex << 22) | (pageIndex << 12) | off

	rootFrame := uint32(0x2000)
	pageFrame := uint32(0x3000)

	rootAddr := uint32(cpu.ProtectedReg[RPT]) + rootIndex
	cpu.Memory.Store(rootAddr, uint64(rootFrame|PageOccupied), 4)

	pageAddr := rootFrame + pageIndex
	cpu.Memory.Store(pageAddr, uint64(pageFrame|PageOccupied|PageWritable|PageExecutable), 4)

	phys, err := cpu.resolve(address, false, false)
	assert.NoError(err)
	assert.Equal(pageFrame+off, phys)
}

func TestResolveNotOccupiedFaults(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(0x10000)
	cpu.ProtectedReg[EFLAGS] = FlagPagingEnable
	cpu.ProtectedReg[RPT] = 0x1000

	var intr *Interrupt
	_, err := cpu.resolve(0, false, false)
	assert.ErrorAs(err, &intr)
	assert.Equal(PageFault, intr.Code)
	assert.Equal(uint64(PageOccupied)<<32|0, intr.Info)
}

func TestResolveWriteToReadOnlyPageFaultsInProtectedMode(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(0x10000)
	cpu.ProtectedReg[EFLAGS] = FlagPagingEnable | FlagProtectedEnable
	cpu.ProtectedReg[RPT] = 0x1000

	rootFrame := uint32(0x2000)
	cpu.Memory.Store(0x1000, uint64(rootFrame|PageOccupied), 4)
	cpu.Memory.Store(rootFrame, uint64(0x3000|PageOccupied), 4) // not writable

	_, err := cpu.resolve(0, true, false)
	var intr *Interrupt
	assert.ErrorAs(err, &intr)
	assert.Equal(PageFault, intr.Code)
	assert.Equal(uint64(PageWritable)<<32, intr.Info)
}

func TestResolveProtectionIgnoredWhenNotInProtectedMode(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(0x10000)
	cpu.ProtectedReg[EFLAGS] = FlagPagingEnable // protected-mode bit clear
	cpu.ProtectedReg[RPT] = 0x1000

	rootFrame := uint32(0x2000)
	cpu.Memory.Store(0x1000, uint64(rootFrame|PageOccupied|PageProtected), 4)
	cpu.Memory.Store(rootFrame, uint64(0x3000|PageOccupied), 4)

	_, err := cpu.resolve(0, true, false)
	assert.NoError(err)
}

func TestResolveSetsAccessedAndModified(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(0x10000)
	cpu.ProtectedReg[EFLAGS] = FlagPagingEnable
	cpu.ProtectedReg[RPT] = 0x1000

	rootFrame := uint32(0x2000)
	cpu.Memory.Store(0x1000, uint64(rootFrame|PageOccupied), 4)
	cpu.Memory.Store(rootFrame, uint64(0x3000|PageOccupied), 4)

	_, err := cpu.resolve(0, true, false)
	assert.NoError(err)

	rootEntry, _ := cpu.Memory.Load(0x1000, 4)
	assert.True(uint32(rootEntry)&PageAccessed != 0)

	pageEntry, _ := cpu.Memory.Load(rootFrame, 4)
	assert.True(uint32(pageEntry)&PageAccessed != 0)
	assert.True(uint32(pageEntry)&PageModified != 0)
}
