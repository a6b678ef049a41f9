package playground

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleSourceClean(t *testing.T) {
	assert := assert.New(t)

	result := assembleSource(".code\nNOOP")
	assert.Equal("result", result.Type)
	assert.True(result.Succeeded)
	assert.Empty(result.Diagnostics)
	assert.Contains(result.Listing, "=======MACHINE CODE=======")
	assert.Contains(result.Listing, "0000_00_00_00000000")
}

func TestAssembleSourceWithErrors(t *testing.T) {
	assert := assert.New(t)

	result := assembleSource(".code\nLOADI A, 300")
	assert.False(result.Succeeded)
	assert.Len(result.Diagnostics, 1)
	assert.True(strings.Contains(result.Diagnostics[0].Message, "300"))
}

func TestAssembleSourceDiagnosticsNeverNil(t *testing.T) {
	// the page iterates the diagnostics array unconditionally
	result := assembleSource(".code\nNOOP")
	assert.NotNil(t, result.Diagnostics)
}
