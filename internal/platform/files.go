package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// DocumentsDirName is the conventional name of the user's documents folder
const DocumentsDirName = "Documents"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path is empty")
	}

	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	cmd, err := openCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// openCommand builds the command that opens path with the default app on goos
func openCommand(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, path), nil
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", path), nil
	case OSLinux:
		return exec.Command(XDGOpenCommand, path), nil
	case OSAndroid:
		return exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", "file://"+path, "-t", "application/pdf"), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// GetHomeDocumentsDir returns the standard Documents directory for the user
func GetHomeDocumentsDir() (string, error) {
	if runtime.GOOS == OSAndroid || os.Getenv("ANDROID_DATA") != "" {
		return "/sdcard/Documents", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DocumentsDirName), nil
}
