package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	content := "ABIDE\n  speed \n\nnope!\ntoolong\ncat\nropes\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadFile(path, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"abide", "speed", "ropes"}, got)
}

func TestKeepValid(t *testing.T) {
	in := []string{"Abide", " crane ", "x1yzq", "ab", ""}
	assert.Equal(t, []string{"abide", "crane"}, keepValid(in, 5))
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, isAlpha("abide"))
	assert.False(t, isAlpha("Abide"))
	assert.False(t, isAlpha("ab1de"))
	assert.False(t, isAlpha("ab de"))
	assert.True(t, isAlpha(""))
}
