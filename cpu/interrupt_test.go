package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntCodeRanges(t *testing.T) {
	assert := assert.New(t)

	assert.True(PageFault.IsFault())
	assert.True(InstructionFault.IsFault())
	assert.True(AluFault.IsFault())
	assert.True(FaultEnd.IsFault())
	assert.False(TimerClock.IsFault())
	assert.False(SoftwareStart.IsFault())

	assert.False(TimerClock.IsSoftware())
	assert.True(SoftwareStart.IsSoftware())
	assert.True(IntCode(0xFF).IsSoftware())
}

func TestInterruptErrorText(t *testing.T) {
	assert := assert.New(t)

	err := raise(AluFault, 7)
	assert.Contains(err.Error(), "interrupt")
}

func TestRaiseExternalRejectsFaultAndSoftwareCodes(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(256)

	err := cpu.RaiseExternal(PageFault, 0)
	assert.ErrorIs(err, ErrExternalRange)

	err = cpu.RaiseExternal(IntCode(0xA5), 0)
	assert.ErrorIs(err, ErrExternalRange)

	err = cpu.RaiseExternal(TimerClock, 0x1234)
	assert.NoError(err)
}
