package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File and directory names
const (
	DataFileName   = "presets.json"
	AppDirName     = "quicktext"
	BackupSuffix   = ".bak"
	TempFilePrefix = ".presets-"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Locator resolves where the data file lives. The function fields exist so
// tests can substitute the process environment.
type Locator struct {
	Getwd         func() (string, error)
	Executable    func() (string, error)
	UserConfigDir func() (string, error)
}

// NewLocator returns a locator bound to the running process
func NewLocator() *Locator {
	return &Locator{
		Getwd:         os.Getwd,
		Executable:    os.Executable,
		UserConfigDir: os.UserConfigDir,
	}
}

// ResolveDataFile returns the data file path for this run.
//
// An explicit override always wins. Otherwise an existing file in the working
// directory is used, then an existing file next to the executable, and
// finally the per-user config directory.
func (l *Locator) ResolveDataFile(override string) string {
	if override != "" {
		if abs, err := filepath.Abs(override); err == nil {
			return abs
		}
		return override
	}

	if wd, err := l.Getwd(); err == nil {
		candidate := filepath.Join(wd, DataFileName)
		if fileExists(candidate) {
			return candidate
		}
	}

	if exe, err := l.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), DataFileName)
		if fileExists(candidate) {
			return candidate
		}
	}

	if dir, err := l.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppDirName, DataFileName)
	}

	if wd, err := l.Getwd(); err == nil {
		return filepath.Join(wd, DataFileName)
	}
	return DataFileName
}

// ResolveDataFile resolves the data file using the process environment
func ResolveDataFile(override string) string {
	return NewLocator().ResolveDataFile(override)
}

// FallbackDataFile returns the data file path in the working directory
func FallbackDataFile() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, DataFileName), nil
}

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, DefaultDirPermissions)
	}
	return nil
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it over path. On failure the previous file is left untouched.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, DefaultFilePermissions); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// BackupFile copies path to path+BackupSuffix and returns the backup path
func BackupFile(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	backup := path + BackupSuffix
	dst, err := os.OpenFile(backup, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", err
	}
	return backup, dst.Close()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
