package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/fragmen"
	"github.com/otiai10/copy"
)

// Ensure Installer implements fragmen.Installer at compile time.
var _ fragmen.Installer = (*Installer)(nil)

// Installer copies fragment sources from a registry into a consumer project.
// The copy is written next to its destination and renamed into place, so a
// failed install leaves no partial file behind.
type Installer struct {
	registryDir string
	workDir     string
}

// NewInstaller creates a new Installer. registryDir is the registry root;
// workDir is the consumer project directory that config paths are relative to.
func NewInstaller(registryDir, workDir string) *Installer {
	return &Installer{
		registryDir: registryDir,
		workDir:     workDir,
	}
}

// SourcePath returns the registry path of a fragment's source file.
func (i *Installer) SourcePath(slug fragmen.Slug) string {
	return filepath.Join(i.registryDir, slug.Category, slug.Name, fragmen.SourceFile)
}

// DestPath returns the path a fragment is installed to under cfg.
func (i *Installer) DestPath(slug fragmen.Slug, cfg *fragmen.Config) string {
	return filepath.Join(i.workDir, filepath.FromSlash(cfg.BaseDir), slug.FileName(cfg.Language))
}

// Install copies the fragment's source verbatim into the consumer project.
func (i *Installer) Install(ctx context.Context, slug fragmen.Slug, cfg *fragmen.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	src, err := i.source(slug)
	if err != nil {
		return "", err
	}

	dest := i.DestPath(slug, cfg)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
	}

	tmp := dest + ".tmp"
	if err := copy.Copy(src, tmp, copy.Options{OnSymlink: followSymlinks}); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to copy %s: %w", slug, err)
	}

	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to install %s: %w", slug, err)
	}

	return dest, nil
}

// Status compares the installed copy of a fragment with its registry source.
func (i *Installer) Status(ctx context.Context, slug fragmen.Slug, cfg *fragmen.Config) (fragmen.InstallStatus, error) {
	src, err := i.source(slug)
	if err != nil {
		return "", err
	}

	installed, err := os.ReadFile(i.DestPath(slug, cfg))
	if errors.Is(err, os.ErrNotExist) {
		return fragmen.StatusMissing, nil
	} else if err != nil {
		return "", err
	}

	original, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	if Checksum(installed) != Checksum(original) {
		return fragmen.StatusModified, nil
	}
	return fragmen.StatusCurrent, nil
}

func followSymlinks(string) copy.SymlinkAction {
	return copy.Deep
}

// source returns the fragment's source path, or ENOTFOUND if it is not a
// regular file in the registry.
func (i *Installer) source(slug fragmen.Slug) (string, error) {
	if !validName(slug.Category) || !validName(slug.Name) {
		return "", fragmen.Errorf(fragmen.ENOTFOUND, "fragment %q not found", slug)
	}

	src := i.SourcePath(slug)
	info, err := os.Stat(src)
	if err != nil || !info.Mode().IsRegular() {
		return "", fragmen.Errorf(fragmen.ENOTFOUND, "fragment %q not found", slug)
	}
	return src, nil
}
