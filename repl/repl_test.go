package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPrintsSpans(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Start(strings.NewReader("x and y # c\n"), &out))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, PROMPT))
	assert.Contains(t, got, `KEYWORD      "and"`)
	assert.Contains(t, got, `LINE_COMMENT "# c"`)
	assert.True(t, strings.HasSuffix(got, PROMPT+"\n"))
}

func TestStartToggle(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Start(strings.NewReader(":toggle   let x = 1\n:toggle // done\n"), &out))

	got := out.String()
	assert.Contains(t, got, PROMPT+"  // let x = 1\n")
	assert.Contains(t, got, PROMPT+"done\n")
}
