package printer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/rl/internal/collector"
	"github.com/harrison/rl/internal/config"
	"github.com/harrison/rl/internal/fileutil"
)

type recordingLogger struct {
	reported []string
}

func (r *recordingLogger) ReportPathError(path string, err error) {
	r.reported = append(r.reported, fmt.Sprintf("%s: %s", path, fileutil.SystemMessage(err)))
}

func (r *recordingLogger) LogDebug(string, ...interface{}) {}

func run(t *testing.T, fsys fileutil.FileSystem, cfg *config.Config, paths ...string) (string, *recordingLogger, error) {
	t.Helper()
	var out bytes.Buffer
	log := &recordingLogger{}
	err := New(&out, fsys, cfg, nil, log).Run(paths)
	return out.String(), log, err
}

func sampleTree() *fileutil.MemFS {
	return fileutil.NewMemFS().
		AddFile("d/b", 0644, 1).
		AddFile("d/a", 0644, 1).
		AddDir("d/sub").
		AddFile("d/sub/inner", 0644, 1)
}

func TestRun_NonRecursiveListsDirectoryNames(t *testing.T) {
	out, _, err := run(t, sampleTree(), config.DefaultConfig(), "d")

	require.NoError(t, err)
	assert.Equal(t, "a    b    sub\n", out)
}

func TestRun_Recursive(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Recursive = true

	out, _, err := run(t, sampleTree(), cfg, "d")

	require.NoError(t, err)
	assert.Equal(t, "a    b    sub\n\nd/sub:\ninner\n", out)
}

func TestRun_DepthFirstSortedSiblings(t *testing.T) {
	fsys := fileutil.NewMemFS().
		AddDir("d/b").
		AddDir("d/a/y").
		AddDir("d/a/x").
		AddFile("d/a/x/leaf", 0644, 0)
	cfg := config.DefaultConfig()
	cfg.Recursive = true

	out, _, err := run(t, fsys, cfg, "d")

	require.NoError(t, err)
	want := "a  b\n" +
		"\nd/a:\nx  y\n" +
		"\nd/a/x:\nleaf\n" +
		"\nd/a/y:\n" +
		"\nd/b:\n"
	assert.Equal(t, want, out)
}

func TestRun_HeaderCountMatchesExpandedDirectories(t *testing.T) {
	fsys := fileutil.NewMemFS()
	dirs := []string{"r/a", "r/a/b", "r/a/b/c", "r/d", "r/e", "r/e/f"}
	for _, d := range dirs {
		fsys.AddDir(d)
	}
	fsys.AddFile("r/e/f/file", 0644, 0)
	cfg := config.DefaultConfig()
	cfg.Recursive = true
	cfg.OnePerLine = true

	out, _, err := run(t, fsys, cfg, "r")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	headers := 0
	for i, line := range lines {
		if strings.HasSuffix(line, ":") {
			headers++
			require.Greater(t, i, 0)
			assert.Equal(t, "", lines[i-1], "header %q must follow a blank line", line)
			if i > 1 {
				assert.NotEqual(t, "", lines[i-2], "exactly one blank line before %q", line)
			}
		}
	}
	assert.Equal(t, len(dirs), headers)
}

func TestRun_MultiplePaths(t *testing.T) {
	fsys := fileutil.NewMemFS().
		AddFile("x", 0644, 0).
		AddFile("dir2/q", 0644, 0).
		AddFile("dir1/p", 0644, 0)

	t.Run("files block first", func(t *testing.T) {
		out, _, err := run(t, fsys, config.DefaultConfig(), "dir2", "x", "dir1")
		require.NoError(t, err)
		assert.Equal(t, "x\n\ndir1:\np\n\ndir2:\nq\n", out)
	})

	t.Run("only directories", func(t *testing.T) {
		out, _, err := run(t, fsys, config.DefaultConfig(), "dir2", "dir1")
		require.NoError(t, err)
		assert.Equal(t, "dir1:\np\n\ndir2:\nq\n", out)
	})

	t.Run("missing path is reported and skipped", func(t *testing.T) {
		out, log, err := run(t, fsys, config.DefaultConfig(), "ghost", "dir1")
		require.NoError(t, err)
		assert.Equal(t, "dir1:\np\n", out)
		require.Len(t, log.reported, 1)
		assert.True(t, strings.HasPrefix(log.reported[0], "ghost: "))
	})

	t.Run("directory only", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.DirectoryOnly = true
		out, _, err := run(t, fsys, cfg, "dir2", "x", "dir1")
		require.NoError(t, err)
		assert.Equal(t, "dir1  dir2  x\n", out)
	})
}

func TestRun_NestedPathsUseFullPathInHeader(t *testing.T) {
	fsys := fileutil.NewMemFS().AddFile("top/mid/low/f", 0644, 0)
	cfg := config.DefaultConfig()
	cfg.Recursive = true

	out, _, err := run(t, fsys, cfg, "top", "top/mid")

	require.NoError(t, err)
	want := "top:\nmid\n" +
		"\ntop/mid:\nlow\n" +
		"\ntop/mid/low:\nf\n" +
		"\ntop/mid:\nlow\n" +
		"\ntop/mid/low:\nf\n"
	assert.Equal(t, want, out)
}

func TestRun_DotPrefixKept(t *testing.T) {
	fsys := fileutil.NewMemFS().AddFile("sub/f", 0644, 0)
	cfg := config.DefaultConfig()
	cfg.Recursive = true

	out, _, err := run(t, fsys, cfg)

	require.NoError(t, err)
	assert.Equal(t, "sub\n\n./sub:\nf\n", out)
}

func TestRun_ShowAllKeepsSelfAndParentFirst(t *testing.T) {
	fsys := fileutil.NewMemFS().AddDir("d/-dir").AddFile("d/.rc", 0644, 0).AddFile("d/a", 0644, 0)
	cfg := config.DefaultConfig()
	cfg.ShowAll = true
	cfg.Recursive = true
	cfg.OnePerLine = true

	out, _, err := run(t, fsys, cfg, "d")

	require.NoError(t, err)
	assert.Equal(t, ".\n..\n-dir\n.rc\na\n\nd/-dir:\n.\n..\n", out)
}

func TestRun_QuotedNames(t *testing.T) {
	fsys := fileutil.NewMemFS().AddFile("d/my file.txt", 0644, 0).AddFile("d/plain", 0644, 0)

	t.Run("quoted when needed", func(t *testing.T) {
		out, _, err := run(t, fsys, config.DefaultConfig(), "d")
		require.NoError(t, err)
		assert.Equal(t, "\"my\\ file.txt\"    plain\n", out)
	})

	t.Run("forced quoting", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.QuoteNames = true
		out, _, err := run(t, fsys, cfg, "d")
		require.NoError(t, err)
		assert.Equal(t, "\"my file.txt\"  \"plain\"\n", out)
	})
}

func TestRun_WidthWrapping(t *testing.T) {
	fsys := fileutil.NewMemFS()
	for _, n := range []string{"aaaa", "bbbb", "cccc", "dddd", "eeee"} {
		fsys.AddFile("d/"+n, 0644, 0)
	}
	cfg := config.DefaultConfig()
	cfg.Width = 16

	out, _, err := run(t, fsys, cfg, "d")

	require.NoError(t, err)
	assert.Equal(t, "aaaa  bbbb  cccc\ndddd  eeee\n", out)
}

func TestRun_NullSeparated(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NullSeparated = true

	out, _, err := run(t, sampleTree(), cfg, "d")

	require.NoError(t, err)
	assert.Equal(t, "a\x00b\x00sub\x00", out)
}

func TestRun_Classify(t *testing.T) {
	fsys := fileutil.NewMemFS().AddFile("d/run.sh", 0755, 0).AddDir("d/lib").AddSymlink("d/ln", "lib")
	cfg := config.DefaultConfig()
	cfg.Classify = true

	out, _, err := run(t, fsys, cfg, "d")

	require.NoError(t, err)
	assert.Equal(t, "lib/     ln@      run.sh*\n", out)
}

func TestRun_LongFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Long = true
	cfg.NoGroup = true

	out, _, err := run(t, sampleTree(), cfg, "d")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "-rw-r--r-- owner 1 "))
	assert.True(t, strings.HasSuffix(lines[0], " a"))
	assert.True(t, strings.HasPrefix(lines[2], "drwxr-xr-x owner 0 "))
	assert.NotContains(t, out, "group")
}

func TestRun_EmptyDirectory(t *testing.T) {
	fsys := fileutil.NewMemFS().AddDir("empty")

	out, _, err := run(t, fsys, config.DefaultConfig(), "empty")

	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRun_EnumerationFailureAborts(t *testing.T) {
	fsys := sampleTree().AddDir("d/zz").Fail("readdir", "d/sub", syscall.EACCES)
	cfg := config.DefaultConfig()
	cfg.Recursive = true

	out, _, err := run(t, fsys, cfg, "d")

	require.Error(t, err)
	var listErr *collector.ListError
	require.True(t, errors.As(err, &listErr))
	assert.Equal(t, "d/sub", listErr.Path)
	assert.Equal(t, "d/sub: "+syscall.EACCES.Error(), err.Error())
	assert.Equal(t, "a    b    sub  zz\n", out)
}

func TestRun_EnumerationFailureContinue(t *testing.T) {
	fsys := sampleTree().AddFile("d/zz/deep", 0644, 0).Fail("readdir", "d/sub", syscall.EACCES)
	cfg := config.DefaultConfig()
	cfg.Recursive = true
	cfg.ContinueOnError = true

	out, log, err := run(t, fsys, cfg, "d")

	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.Equal(t, "a    b    sub  zz\n\nd/zz:\ndeep\n", out)
	assert.Equal(t, []string{"d/sub: " + syscall.EACCES.Error()}, log.reported)
}

func TestRun_TopLevelFailureContinue(t *testing.T) {
	fsys := sampleTree().Fail("readdir", "d", syscall.EACCES)
	cfg := config.DefaultConfig()
	cfg.ContinueOnError = true

	out, log, err := run(t, fsys, cfg, "d")

	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.Equal(t, "", out)
	assert.Len(t, log.reported, 1)
}

func TestRun_OSFileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	d := filepath.Join(tmpDir, "d")
	require.NoError(t, os.MkdirAll(filepath.Join(d, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(d, "b"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(d, "a"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(d, "sub", "c"), nil, 0644))

	cfg := config.DefaultConfig()
	cfg.Recursive = true

	out, _, err := run(t, fileutil.NewOSFileSystem(), cfg, d)

	require.NoError(t, err)
	assert.Equal(t, "a    b    sub\n\n"+d+"/sub:\nc\n", out)
}
