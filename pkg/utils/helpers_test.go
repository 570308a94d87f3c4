package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.mp4"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mp4"), nil, 0644))

	names, err := ListDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mp4", "b.mp4"}, names)

	_, err = ListDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "final", BaseName("games/final.mp4"))
	assert.Equal(t, "final.game", BaseName("final.game.avi"))
	assert.Equal(t, "clip", BaseName("clip"))
}

func TestBaseNameTaken(t *testing.T) {
	existing := []string{"final.avi", "semi.mp4"}

	assert.True(t, BaseNameTaken("final.mp4", existing))
	assert.True(t, BaseNameTaken("semi.mp4", existing))
	assert.False(t, BaseNameTaken("quarter.mp4", existing))
	assert.False(t, BaseNameTaken("final.mp4", nil))
}

func TestIsVideo(t *testing.T) {
	assert.True(t, IsVideo("a.MP4"))
	assert.True(t, IsVideo("b.avi"))
	assert.False(t, IsVideo("notes.txt"))
	assert.False(t, IsVideo("mp4"))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x", "y")
	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSetDefaults(t *testing.T) {
	viper.Reset()
	SetDefaults()
	defer viper.Reset()

	assert.Equal(t, 11, viper.GetInt("possession.min_frames"))
	assert.Equal(t, 50, viper.GetInt("team.cache_reset_frames"))
	assert.Equal(t, "mp4", viper.GetString("video.prod_format"))
	for _, key := range DirectoryKeys {
		assert.NotEmpty(t, viper.GetString(key), key)
	}
}

func TestPadSequence(t *testing.T) {
	zero := func() int { return 0 }

	assert.Equal(t, []int{1, 2, 0, 0}, PadSequence([]int{1, 2}, 4, zero))
	assert.Equal(t, []int{1, 2}, PadSequence([]int{1, 2, 3}, 2, zero))
	assert.Equal(t, []int{0}, PadSequence(nil, 1, zero))
	assert.Empty(t, PadSequence([]int{1}, -1, zero))

	maps := PadSequence([]map[int]int{}, 2, func() map[int]int { return make(map[int]int) })
	maps[0][1] = 1
	assert.Empty(t, maps[1])
}
