package pathutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
	"github.com/hashcalc-project/hashcalc/pkg/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"short", "/data/a.iso", "a.iso"},
		{"exactly twenty", "/data/abcdefghijklmnop.txt", "abcdefghijklmnop.txt"},
		{"twenty five", "/data/abcdefghijklmnopqrstu.txt", "...fghijklmnopqrstu.txt"},
		{"windows path", `C:\Users\me\setup.exe`, "setup.exe"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathutil.DisplayName(tt.path))
		})
	}
}

func TestDisplayName_TruncatedLength(t *testing.T) {
	name := "0123456789012345678901234" // 25 characters
	got := pathutil.DisplayName(filepath.Join("/tmp", name))
	assert.Len(t, got, 23)
	assert.Equal(t, "..."+name[5:], got)
}

func TestDisplayName_CountsCharactersNotBytes(t *testing.T) {
	name := "ééééééééééééééééééééé.bin" // 21 é + ".bin"
	got := pathutil.DisplayName("/tmp/" + name)
	runes := []rune(got)
	assert.Len(t, runes, 23)
	assert.Equal(t, "...", string(runes[:3]))
}

func TestDriveLetter(t *testing.T) {
	assert.Equal(t, "C", pathutil.DriveLetter(`c:\data\file.bin`))
	assert.Equal(t, "D", pathutil.DriveLetter("D:/file.bin"))
	assert.Equal(t, "", pathutil.DriveLetter("/home/user/file.bin"))
	assert.Equal(t, "", pathutil.DriveLetter("1:/file"))
	assert.Equal(t, "", pathutil.DriveLetter("C"))
}

func TestHasMountPrefix(t *testing.T) {
	assert.True(t, pathutil.HasMountPrefix("/home/user/file", "/home"))
	assert.True(t, pathutil.HasMountPrefix("/home", "/home/"))
	assert.True(t, pathutil.HasMountPrefix("/etc/hosts", "/"))
	assert.False(t, pathutil.HasMountPrefix("/homework/file", "/home"))
	assert.False(t, pathutil.HasMountPrefix("/home/file", "C"))
	assert.False(t, pathutil.HasMountPrefix("/home/file", ""))
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.bin")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	link := filepath.Join(dir, "link.bin")
	require.NoError(t, os.Symlink(target, link))

	wantTarget, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)

	got, err := pathutil.Resolve(link)
	require.NoError(t, err)
	assert.Equal(t, wantTarget, got)
}

func TestResolve_MissingFileKeepsPath(t *testing.T) {
	dir := t.TempDir()
	resolvedDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	got, err := pathutil.Resolve(filepath.Join(dir, "nope", "missing.bin"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(resolvedDir, "nope", "missing.bin"), got)
}

func TestResolve_Empty(t *testing.T) {
	_, err := pathutil.Resolve("  ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errclass.ErrUsage))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.NoError(t, pathutil.ValidateFile(file))
	assert.True(t, errors.Is(pathutil.ValidateFile(dir), errclass.ErrUsage))
	assert.True(t, errors.Is(pathutil.ValidateFile(filepath.Join(dir, "missing")), errclass.ErrUsage))
}
