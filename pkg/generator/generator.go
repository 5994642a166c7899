// Package generator produces the human readable supported readers file from
// a CCID supported readers config.
package generator

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/ccid-tools/readerlist/pkg/errors"
	"github.com/ccid-tools/readerlist/pkg/logging"
	"github.com/ccid-tools/readerlist/pkg/readers"
	"github.com/ccid-tools/readerlist/pkg/types"
)

// DefaultFileMode is used when GenerateOptions.FileMode is zero
const DefaultFileMode fs.FileMode = 0644

// GenerateOptions contains options for Generate
type GenerateOptions struct {
	// FileSystem to read the config from and write the target to
	FileSystem types.FS

	// ConfigPath is the CCID supported readers config
	ConfigPath string

	// TargetPath receives the generated list
	TargetPath string

	// Readers controls section and comment detection
	Readers readers.Options

	// FileMode of the target file
	FileMode fs.FileMode
}

// GenerateResult describes a successful run
type GenerateResult struct {
	ConfigPath string
	TargetPath string
	Supported  []string
	Ignored    []string
	Output     string
}

// Generate extracts the supported readers and writes the list. The target is
// only written once the whole config has been parsed successfully.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	logger := logging.GetLogger("generator")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	if opts.FileSystem == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no filesystem given")
	}
	if opts.ConfigPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "CCID supported readers config path is required")
	}
	if opts.TargetPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "target file path is required")
	}
	mode := opts.FileMode
	if mode == 0 {
		mode = DefaultFileMode
	}

	data, err := readConfig(opts.FileSystem, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	result, err := readers.Extract(bytes.NewReader(data), opts.Readers)
	if err != nil {
		return nil, err
	}
	output := result.Render()

	if dir := filepath.Dir(opts.TargetPath); dir != "." {
		if err := opts.FileSystem.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir)
		}
	}
	if err := opts.FileSystem.WriteFile(opts.TargetPath, []byte(output), mode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", opts.TargetPath)
	}

	logger.Info().
		Str("config", opts.ConfigPath).
		Str("target", opts.TargetPath).
		Int("supported", len(result.Accepted)).
		Int("ignored", len(result.Rejected)).
		Msg("Readers list written")

	return &GenerateResult{
		ConfigPath: opts.ConfigPath,
		TargetPath: opts.TargetPath,
		Supported:  result.Sorted(),
		Ignored:    result.Rejected,
		Output:     output,
	}, nil
}

func readConfig(fsys types.FS, path string) ([]byte, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound,
				"CCID supported readers config %s does not exist", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is a directory", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	return data, nil
}
