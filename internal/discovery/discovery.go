// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"os"

	"github.com/ConradoAlmeida/cheatsheets/pkg/fspath"
	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

// RepoMarker is the entry whose presence marks a repository root. It may be
// a directory or, for worktrees and submodules, a file.
const RepoMarker = ".git"

// ErrNoDataFile is returned when neither a path argument nor a data file is given.
var ErrNoDataFile = errors.New("no data file configured")

// Source represents how the data file path was determined
type Source int

const (
	// SourceArgument indicates the path was passed on the command line
	SourceArgument Source = iota
	// SourceRootFlag indicates the path was joined to an explicit --root
	SourceRootFlag
	// SourceRepository indicates the path was joined to the detected repository root
	SourceRepository
	// SourceWorkingDir indicates no repository was found and the working directory was used
	SourceWorkingDir
)

// String returns a human-readable source name
func (s Source) String() string {
	switch s {
	case SourceArgument:
		return "argument"
	case SourceRootFlag:
		return "--root"
	case SourceRepository:
		return "repository root"
	case SourceWorkingDir:
		return "working directory"
	default:
		return "unknown"
	}
}

type (
	// Options holds the inputs to Resolve.
	Options struct {
		// Arg is the positional path argument, if any.
		Arg types.FilesystemPath
		// Root is the --root flag value, if any.
		Root types.FilesystemPath
		// DataFile is the configured data file, relative to the root unless absolute.
		DataFile string
		// WorkDir is where root detection starts. os.Getwd() when empty.
		WorkDir types.FilesystemPath
	}

	// Resolved is the outcome of data file resolution.
	Resolved struct {
		// Path is the data file to validate.
		Path types.FilesystemPath
		// Root is the directory Path was resolved against. Empty for SourceArgument.
		Root types.FilesystemPath
		// Source tells how Path was determined.
		Source Source
	}
)

// FindRoot walks up from start to the first directory containing RepoMarker.
// It reports false when the filesystem root is reached without a match.
func FindRoot(start types.FilesystemPath) (types.FilesystemPath, bool) {
	dir := start
	for {
		if fspath.Exists(fspath.JoinStr(dir, RepoMarker)) {
			return dir, true
		}
		parent := fspath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Resolve determines the data file path from opts.
func Resolve(opts Options) (*Resolved, error) {
	if opts.Arg != "" {
		if err := opts.Arg.Validate(); err != nil {
			return nil, err
		}
		return &Resolved{Path: opts.Arg, Source: SourceArgument}, nil
	}

	if opts.DataFile == "" {
		return nil, ErrNoDataFile
	}

	root, source, err := resolveRoot(opts)
	if err != nil {
		return nil, err
	}

	path := types.FilesystemPath(opts.DataFile)
	if !fspath.IsAbs(path) {
		path = fspath.JoinStr(root, opts.DataFile)
	}
	return &Resolved{Path: path, Root: root, Source: source}, nil
}

func resolveRoot(opts Options) (types.FilesystemPath, Source, error) {
	if opts.Root != "" {
		if err := opts.Root.Validate(); err != nil {
			return "", 0, err
		}
		return opts.Root, SourceRootFlag, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", 0, fmt.Errorf("failed to get working directory: %w", err)
		}
		workDir = types.FilesystemPath(wd)
	}

	absWorkDir, err := fspath.Abs(workDir)
	if err != nil {
		return "", 0, err
	}

	if root, ok := FindRoot(absWorkDir); ok {
		return root, SourceRepository, nil
	}
	return absWorkDir, SourceWorkingDir, nil
}
