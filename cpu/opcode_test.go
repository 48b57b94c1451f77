package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for off := -32768; off <= 32767; off += 997 {
		for _, op := range []Opcode{MOV, LD, SD, JMP, ADD, DIV, PMOV, IRET} {
			word := Encode(op, A, B, int16(off))
			inst := Decode(word)
			assert.Equal(op, inst.Op)
			assert.Equal(A, inst.R0)
			assert.Equal(B, inst.R1)
			assert.Equal(int64(int16(off)), inst.Offset)
		}
	}
}

func TestDecodeFields(t *testing.T) {
	assert := assert.New(t)

	// MOV A, Z+42
	inst := Decode(Encode(MOV, A, Z, 42))
	assert.Equal(MOV, inst.Op)
	assert.Equal(A, inst.R0)
	assert.Equal(Z, inst.R1)
	assert.Equal(int64(42), inst.Offset)
}

func TestDecodeNegativeOffset(t *testing.T) {
	assert := assert.New(t)

	word := Encode(ADD, A, B, -1)
	inst := Decode(word)
	assert.Equal(int64(-1), inst.Offset)
}

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		op   Opcode
		unit unit
	}{
		{MOV, unitMisc}, {GEF, unitMisc}, {INT, unitMisc},
		{LB, unitLoad}, {LD, unitLoad},
		{SB, unitStore}, {SD, unitStore},
		{PUSH, unitStack}, {POP, unitStack},
		{JMP, unitBranch}, {JIF, unitBranch},
		{AND, unitAlu}, {SSHR, unitAlu},
		{PMOV, unitPrivileged}, {IRET, unitPrivileged},
	}
	for _, tt := range tests {
		u, ok := classify(tt.op)
		assert.True(ok, tt.op)
		assert.Equal(tt.unit, u, tt.op)
	}

	_, ok := classify(Opcode(200))
	assert.False(ok)
}
