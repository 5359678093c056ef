package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/prasetyowira/qrgen/constant"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
	"github.com/spf13/afero"
)

// FileSink stores artifacts as whole files inside a single output directory
type FileSink struct {
	fs  afero.Fs
	dir string
}

// NewFileSink creates a sink writing into dir on fs
func NewFileSink(fs afero.Fs, dir string) *FileSink {
	return &FileSink{fs: fs, dir: dir}
}

// NewOSFileSink creates a sink on the operating system file system
func NewOSFileSink(dir string) *FileSink {
	return NewFileSink(afero.NewOsFs(), dir)
}

// Dir returns the output directory
func (s *FileSink) Dir() string {
	return s.dir
}

// EnsureDir creates the output directory if it does not exist. Safe to call
// on every start.
func (s *FileSink) EnsureDir() error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		appLogger.CtxError(context.Background(), "Failed to create output directory", appLogger.LoggerInfo{
			ContextFunction: constant.CtxStorage,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeStorageMkdir,
				Message: err.Error(),
				Type:    constant.ErrTypeStorage,
			},
			Data: map[string]interface{}{
				constant.DataDir: s.dir,
			},
		})
		return err
	}
	return nil
}

// Path returns the location of name inside the output directory
func (s *FileSink) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Write replaces the file called name with data. It reports whether a file
// with that name already existed.
func (s *FileSink) Write(name string, data []byte) (bool, error) {
	if err := validName(name); err != nil {
		return false, err
	}

	path := s.Path(name)
	overwritten, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, err
	}

	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		appLogger.CtxError(context.Background(), "Failed to write artifact", appLogger.LoggerInfo{
			ContextFunction: constant.CtxStorage,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeStorageWrite,
				Message: err.Error(),
				Type:    constant.ErrTypeStorage,
			},
			Data: map[string]interface{}{
				constant.DataFilePath: path,
			},
		})
		return false, err
	}

	appLogger.CtxDebug(context.Background(), "Artifact written", appLogger.LoggerInfo{
		ContextFunction: constant.CtxStorage,
		Data: map[string]interface{}{
			constant.DataFilePath:    path,
			constant.DataBytes:       len(data),
			constant.DataOverwritten: overwritten,
		},
	})

	return overwritten, nil
}

// Read returns the contents of the file called name
func (s *FileSink) Read(name string) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.Path(name))
	if err != nil {
		appLogger.CtxWarn(context.Background(), "Failed to read artifact", appLogger.LoggerInfo{
			ContextFunction: constant.CtxStorage,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeStorageRead,
				Message: err.Error(),
				Type:    constant.ErrTypeStorage,
			},
			Data: map[string]interface{}{
				constant.DataFilePath: s.Path(name),
			},
		})
		return nil, err
	}
	return data, nil
}

// Exists reports whether a regular file called name is stored
func (s *FileSink) Exists(name string) (bool, error) {
	if err := validName(name); err != nil {
		return false, err
	}

	info, err := s.fs.Stat(s.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		appLogger.CtxWarn(context.Background(), "Failed to stat artifact", appLogger.LoggerInfo{
			ContextFunction: constant.CtxStorage,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeStorageStat,
				Message: err.Error(),
				Type:    constant.ErrTypeStorage,
			},
			Data: map[string]interface{}{
				constant.DataFilePath: s.Path(name),
			},
		})
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// List returns the names of the stored artifacts
func (s *FileSink) List() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Mode().IsRegular() && strings.HasSuffix(entry.Name(), constant.ArtifactExt) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// validName rejects names that would escape the output directory
func validName(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return errors.New(constant.ErrInvalidFileName)
	}
	return nil
}
