package midiwindows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackShortMessage(t *testing.T) {
	packed, err := packShortMessage([]byte{0x90, 60, 127})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(uint32(0x007F3C90), packed)

	packed, err = packShortMessage([]byte{0x89, 36, 0})
	assert.NoError(err)
	assert.Equal(uint32(0x00002489), packed)
}

func TestPackShortMessageRejects(t *testing.T) {
	for _, msg := range [][]byte{nil, {0x90, 1, 2, 3}, {0x3C, 0x40}} {
		_, err := packShortMessage(msg)
		assert.ErrorIs(t, err, ErrShortMessage)
	}
}
