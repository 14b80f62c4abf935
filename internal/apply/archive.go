package apply

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// Archive packs the generated theme directory into a .tar.xz archive
// at dest, for sharing a theme without re-running the generator.
// Entry names are relative to srcDir.
func Archive(srcDir, dest string) error {
	info, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("failed to stat theme directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", srcDir)
	}

	f, err := os.Create(dest) // #nosec G304 - user-specified archive destination
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	xzw, err := xz.NewWriter(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	tw := tar.NewWriter(xzw)

	err = filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return fmt.Errorf("failed to build tar header for %s: %w", rel, err)
		}
		hdr.Name = filepath.ToSlash(rel)

		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", rel, err)
		}
		if info.IsDir() {
			return nil
		}

		src, err := os.Open(path) // #nosec G304 - walking the theme directory
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", rel, err)
		}
		defer src.Close()

		if _, err := io.Copy(tw, src); err != nil {
			return fmt.Errorf("failed to archive %s: %w", rel, err)
		}
		return nil
	})
	if err != nil {
		f.Close()
		return err
	}

	if err := tw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalise tar stream: %w", err)
	}
	if err := xzw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalise xz stream: %w", err)
	}
	return f.Close()
}
