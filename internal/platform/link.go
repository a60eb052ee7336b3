package platform

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
)

const sidecarSuffix = ".target"

// CreateLink makes link point at the target directory.
// On Unix systems, this uses os.Symlink directly.
// On Windows, it attempts os.Symlink first (requires developer mode),
// then falls back to copying the directory and writing a .target sidecar.
// copied reports whether the fallback was used.
func CreateLink(target, link string) (copied bool, err error) {
	if runtime.GOOS != "windows" {
		return false, os.Symlink(target, link)
	}

	if err := os.Symlink(target, link); err == nil {
		return false, nil
	}

	if err := CopyDir(target, link, nil); err != nil {
		return false, fmt.Errorf("link fallback (copy) failed: %w", err)
	}
	if err := os.WriteFile(link+sidecarSuffix, []byte(target), 0644); err != nil {
		return true, fmt.Errorf("writing link sidecar: %w", err)
	}
	return true, nil
}

// RemoveLink removes a link, or its fallback copy and sidecar. A missing
// link is not an error.
func RemoveLink(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if info.Mode()&os.ModeSymlink != 0 {
		err = os.Remove(path)
	} else {
		err = os.RemoveAll(path)
	}
	os.Remove(path + sidecarSuffix) // best-effort
	return err
}

// ReadLinkTarget returns the directory a link points at.
// On Windows, if os.Readlink fails (because a copy fallback was used),
// it reads from the .target sidecar file.
func ReadLinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}

	data, readErr := os.ReadFile(path + sidecarSuffix)
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no %s sidecar found: %w", sidecarSuffix, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// IsLink reports whether path is a symlink or a fallback copy with a sidecar.
func IsLink(path string) bool {
	_, err := ReadLinkTarget(path)
	return err == nil
}
