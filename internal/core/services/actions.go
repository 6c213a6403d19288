package services

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on displayed results.
type ResultActionService struct {
	// run executes an external command; replaced in tests.
	run func(cmd *exec.Cmd) error
}

// NewResultActionService creates a new result action service.
func NewResultActionService() *ResultActionService {
	return &ResultActionService{
		run: func(cmd *exec.Cmd) error { return cmd.Run() },
	}
}

// OpenPreview opens the item's preview in the default application.
func (s *ResultActionService) OpenPreview(_ context.Context, item *domain.ResultItem) error {
	target, err := previewURL(item)
	if err != nil {
		return err
	}
	cmd, err := openCommand(target)
	if err != nil {
		return err
	}
	return s.run(cmd)
}

// CopyPreviewURL copies the item's preview URL to the system clipboard.
func (s *ResultActionService) CopyPreviewURL(_ context.Context, item *domain.ResultItem) error {
	target, err := previewURL(item)
	if err != nil {
		return err
	}
	cmd, err := clipboardCommand()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(target)
	return s.run(cmd)
}

// previewURL validates that item has an http(s) preview URL.
func previewURL(item *domain.ResultItem) (string, error) {
	if item == nil {
		return "", fmt.Errorf("result is nil")
	}
	if !item.HasPreview() {
		return "", fmt.Errorf("%w: no preview available", domain.ErrNotFound)
	}
	u, err := url.Parse(item.PreviewURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: preview URL %q", domain.ErrInvalidInput, item.PreviewURL)
	}
	return u.String(), nil
}

// openCommand returns the OS-specific command that opens target.
func openCommand(target string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case osDarwin:
		return exec.Command("open", target), nil
	case osLinux:
		return exec.Command("xdg-open", target), nil
	case osWindows:
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// clipboardCommand returns the OS-specific clipboard command.
func clipboardCommand() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case osDarwin:
		return exec.Command("pbcopy"), nil
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		} else if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, fmt.Errorf("no clipboard utility found (install xclip or xsel)")
	case osWindows:
		return exec.Command("cmd", "/c", "clip"), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
