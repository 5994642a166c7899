// pkg/generator/generator_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS, OS FS for permissions
// PURPOSE: Test end to end generation of the readers list file

package generator_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/ccid-tools/readerlist/pkg/errors"
	"github.com/ccid-tools/readerlist/pkg/filesystem"
	"github.com/ccid-tools/readerlist/pkg/generator"
	"github.com/ccid-tools/readerlist/pkg/readers"
	"github.com/ccid-tools/readerlist/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	fsys := testutil.NewTestFS()
	configPath := testutil.WriteFile(t, fsys, "/src/supported_readers.txt", testutil.SampleReadersConfig)

	result, err := generator.Generate(generator.GenerateOptions{
		FileSystem: fsys,
		ConfigPath: configPath,
		TargetPath: "/build/out/human_readable_supported_readers.txt",
		Readers:    readers.DefaultOptions(),
	})
	require.NoError(t, err)

	assert.Equal(t, testutil.SampleReadersList, result.Output)
	assert.Len(t, result.Supported, 5)
	assert.Equal(t, []string{"Broken Reader"}, result.Ignored)

	written := testutil.ReadFile(t, fsys, "/build/out/human_readable_supported_readers.txt")
	assert.Equal(t, testutil.SampleReadersList, written)
}

func TestGenerate_Idempotent(t *testing.T) {
	fsys := testutil.NewTestFS()
	configPath := testutil.WriteFile(t, fsys, "/cfg.txt", testutil.SampleReadersConfig)
	opts := generator.GenerateOptions{
		FileSystem: fsys,
		ConfigPath: configPath,
		TargetPath: "/list.txt",
	}

	_, err := generator.Generate(opts)
	require.NoError(t, err)
	first := testutil.ReadFile(t, fsys, "/list.txt")

	_, err = generator.Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, first, testutil.ReadFile(t, fsys, "/list.txt"))
}

func TestGenerate_TruncatesExistingTarget(t *testing.T) {
	fsys := testutil.NewTestFS()
	configPath := testutil.WriteFile(t, fsys, "/cfg.txt", "# section: supported\n0001:0001:A\n")
	testutil.WriteFile(t, fsys, "/list.txt", "a much longer stale content\nthat must go away\n")

	_, err := generator.Generate(generator.GenerateOptions{
		FileSystem: fsys,
		ConfigPath: configPath,
		TargetPath: "/list.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "A", testutil.ReadFile(t, fsys, "/list.txt"))
}

func TestGenerate_NoPartialOutput(t *testing.T) {
	tests := []struct {
		name   string
		config string
		code   errors.ErrorCode
	}{
		{
			name:   "reader_before_section",
			config: "0001:0001:ReaderA\n",
			code:   errors.ErrReaderBeforeSection,
		},
		{
			name:   "no_supported_readers",
			config: "# section: other\n0001:0001:ReaderX\n",
			code:   errors.ErrNoSupportedReaders,
		},
		{
			name:   "malformed_line_after_valid_entries",
			config: "# section: supported\n0001:0001:A\nnotcolondelimited\n",
			code:   errors.ErrMalformedReaderLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.NewTestFS()
			configPath := testutil.WriteFile(t, fsys, "/cfg.txt", tt.config)

			result, err := generator.Generate(generator.GenerateOptions{
				FileSystem: fsys,
				ConfigPath: configPath,
				TargetPath: "/list.txt",
			})
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)

			_, statErr := fsys.Stat("/list.txt")
			assert.ErrorIs(t, statErr, fs.ErrNotExist)
		})
	}
}

func TestGenerate_InputErrors(t *testing.T) {
	fsys := testutil.NewTestFS()
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	tests := []struct {
		name string
		opts generator.GenerateOptions
		code errors.ErrorCode
	}{
		{
			name: "missing_config",
			opts: generator.GenerateOptions{FileSystem: fsys, ConfigPath: "/nope.txt", TargetPath: "/list.txt"},
			code: errors.ErrFileNotFound,
		},
		{
			name: "config_is_directory",
			opts: generator.GenerateOptions{FileSystem: fsys, ConfigPath: "/dir", TargetPath: "/list.txt"},
			code: errors.ErrInvalidInput,
		},
		{
			name: "no_config_path",
			opts: generator.GenerateOptions{FileSystem: fsys, TargetPath: "/list.txt"},
			code: errors.ErrInvalidInput,
		},
		{
			name: "no_target_path",
			opts: generator.GenerateOptions{FileSystem: fsys, ConfigPath: "/cfg.txt"},
			code: errors.ErrInvalidInput,
		},
		{
			name: "no_filesystem",
			opts: generator.GenerateOptions{ConfigPath: "/cfg.txt", TargetPath: "/list.txt"},
			code: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generator.Generate(tt.opts)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestGenerate_FileMode(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()
	configPath := testutil.WriteFile(t, fsys, filepath.Join(dir, "cfg.txt"), "# section: supported\n0001:0001:A\n")
	target := filepath.Join(dir, "list.txt")

	_, err := generator.Generate(generator.GenerateOptions{
		FileSystem: fsys,
		ConfigPath: configPath,
		TargetPath: target,
		FileMode:   0600,
	})
	require.NoError(t, err)

	info, err := fsys.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())
}
