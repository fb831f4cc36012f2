package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill_LowercasesAndTrims(t *testing.T) {
	assert.Equal(t, "python", NormalizeSkill("Python"))
	assert.Equal(t, "rest api", NormalizeSkill("  REST API  "))
	assert.Equal(t, "c++", NormalizeSkill("C++"))
}

func TestNormalizeSkill_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeSkill(""))
	assert.Equal(t, "", NormalizeSkill("   "))
}

func TestNormalizeSkill_NoOtherTransformation(t *testing.T) {
	// Internal whitespace and punctuation are preserved.
	assert.Equal(t, "node.js", NormalizeSkill("Node.js"))
	assert.Equal(t, "machine  learning", NormalizeSkill("Machine  Learning"))
}
