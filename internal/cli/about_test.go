package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboutCommand(t *testing.T) {
	root := NewRootCmd("1.2.3", "abc1234", "2026-08-29")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"about"})

	require.NoError(t, root.Execute())

	got := out.String()
	assert.Contains(t, got, "divvy")
	assert.Contains(t, got, "1.2.3")
	assert.Contains(t, got, "abc1234")
	assert.Contains(t, got, "2026-08-29")
	assert.Contains(t, got, runtime.GOOS+"/"+runtime.GOARCH)
}
