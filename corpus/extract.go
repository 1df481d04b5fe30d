package corpus

import (
	"archive/tar"
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ExtractTarGz
// Unpacks a gzip-compressed tarball under destDir, creating directories as
// needed. Entries whose names would escape destDir are rejected; entry
// types other than files and directories are skipped.
func ExtractTarGz(archivePath string, destDir string) error {
	archiveFile, openErr := os.Open(archivePath)
	if openErr != nil {
		return openErr
	}
	defer archiveFile.Close()
	gzReader, gzErr := gzip.NewReader(
		bufio.NewReaderSize(archiveFile, 4*1024*1024))
	if gzErr != nil {
		return errors.New(fmt.Sprintf("error reading %s: %s",
			archivePath, gzErr))
	}
	defer gzReader.Close()
	cleanDest := filepath.Clean(destDir)
	tarReader := tar.NewReader(gzReader)
	extracted := 0
	for {
		header, nextErr := tarReader.Next()
		if nextErr == io.EOF {
			break
		} else if nextErr != nil {
			return errors.New(fmt.Sprintf("error reading %s: %s",
				archivePath, nextErr))
		}
		targetPath := filepath.Join(cleanDest, header.Name)
		if targetPath != cleanDest && !strings.HasPrefix(targetPath,
			cleanDest+string(os.PathSeparator)) {
			return errors.New(fmt.Sprintf("archive entry escapes %s: %s",
				destDir, header.Name))
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if mkErr := os.MkdirAll(targetPath, 0755); mkErr != nil {
				return mkErr
			}
		case tar.TypeReg:
			if mkErr := os.MkdirAll(filepath.Dir(targetPath),
				0755); mkErr != nil {
				return mkErr
			}
			outFile, createErr := os.OpenFile(targetPath,
				os.O_TRUNC|os.O_RDWR|os.O_CREATE, 0644)
			if createErr != nil {
				return errors.New(
					fmt.Sprintf("error opening '%s' for write: %s",
						targetPath, createErr))
			}
			if _, copyErr := io.Copy(outFile, tarReader); copyErr != nil {
				outFile.Close()
				return errors.New(fmt.Sprintf("error extracting %s: %s",
					header.Name, copyErr))
			}
			if closeErr := outFile.Close(); closeErr != nil {
				return closeErr
			}
			extracted++
		}
	}
	log.Printf("Extracted %d files from %s", extracted, archivePath)
	return nil
}
