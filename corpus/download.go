package corpus

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// WriteCounter counts the number of bytes written to it, and every 10 seconds,
// it prints a message reporting the number of bytes written so far.
type WriteCounter struct {
	Total uint64
	Last  time.Time
	Path  string
	Size  uint64
}

func (wc *WriteCounter) Write(p []byte) (int, error) {
	n := len(p)
	wc.Total += uint64(n)
	if time.Now().Sub(wc.Last).Seconds() > 10 {
		wc.Last = time.Now()
		log.Print(fmt.Sprintf("Downloading %s... %s / %s completed.",
			wc.Path, humanize.Bytes(wc.Total), humanize.Bytes(wc.Size)))
	}
	return n, nil
}

// FetchHTTP
// Fetch a remote resource, returning its body reader along with the size
// advertised by the server.
func FetchHTTP(client *http.Client, uri string) (io.ReadCloser, uint64, error) {
	resp, remoteErr := client.Get(uri)
	if remoteErr != nil {
		return nil, 0, remoteErr
	}
	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, 0, errors.New(fmt.Sprintf("HTTP status code %d for %s",
			resp.StatusCode, uri))
	}
	size, _ := strconv.Atoi(resp.Header.Get("Content-Length"))
	return resp.Body, uint64(size), nil
}

// downloadToFile streams a fetched resource into targetPath, reporting
// progress as it goes. The reader is always closed.
func downloadToFile(reader io.ReadCloser, size uint64, srcURL string,
	targetPath string) error {
	outFile, fileErr := os.OpenFile(targetPath,
		os.O_TRUNC|os.O_RDWR|os.O_CREATE, 0755)
	if fileErr != nil {
		reader.Close()
		return errors.New(fmt.Sprintf("error opening '%s' for write: %s",
			targetPath, fileErr))
	}
	counter := &WriteCounter{
		Last: time.Now(),
		Path: srcURL,
		Size: size,
	}
	bytesDownloaded, ioErr := io.Copy(outFile, io.TeeReader(reader, counter))
	reader.Close()
	closeErr := outFile.Close()
	if ioErr != nil {
		return errors.New(fmt.Sprintf("error downloading '%s': %s",
			srcURL, ioErr))
	} else if closeErr != nil {
		return closeErr
	}
	log.Println(fmt.Sprintf("Downloaded %s... %s completed.", srcURL,
		humanize.Bytes(uint64(bytesDownloaded))))
	return nil
}

// MaybeDownload
// Downloads srcURL into dir/filename unless the file is already there, and
// returns the local path. Plain http(s) and s3:// sources are supported.
func MaybeDownload(dir string, filename string, srcURL string) (string, error) {
	targetPath := filepath.Join(dir, filename)
	if _, statErr := os.Stat(targetPath); !os.IsNotExist(statErr) {
		log.Printf("Not downloading, file already found: %s", targetPath)
		return targetPath, nil
	}
	if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
		return "", mkErr
	}
	if IsS3URL(srcURL) {
		svc, svcErr := NewS3Client()
		if svcErr != nil {
			return "", svcErr
		}
		if s3Err := DownloadS3(svc, srcURL, targetPath); s3Err != nil {
			return "", s3Err
		}
		return targetPath, nil
	}
	reader, size, fetchErr := FetchHTTP(http.DefaultClient, srcURL)
	if fetchErr != nil {
		return "", fetchErr
	}
	if dlErr := downloadToFile(reader, size, srcURL, targetPath); dlErr != nil {
		return "", dlErr
	}
	return targetPath, nil
}

// MaybeDownloadFromDrive
// Like MaybeDownload, but for drive-style shared links. Large files sit
// behind a virus-scan warning page; the server hands back a confirmation
// token in a `download_warning` cookie, and re-requesting the URL with that
// token on the `confirm` parameter starts the real download.
func MaybeDownloadFromDrive(dir string, filename string, srcURL string) (
	string, error) {
	if IsS3URL(srcURL) {
		return MaybeDownload(dir, filename, srcURL)
	}
	targetPath := filepath.Join(dir, filename)
	if _, statErr := os.Stat(targetPath); !os.IsNotExist(statErr) {
		log.Printf("Not downloading, file already found: %s", targetPath)
		return targetPath, nil
	}
	if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
		return "", mkErr
	}
	jar, jarErr := cookiejar.New(nil)
	if jarErr != nil {
		return "", jarErr
	}
	client := &http.Client{Jar: jar}
	resp, remoteErr := client.Get(srcURL)
	if remoteErr != nil {
		return "", remoteErr
	}
	confirmToken := ""
	for _, cookie := range resp.Cookies() {
		if strings.HasPrefix(cookie.Name, "download_warning") {
			confirmToken = cookie.Value
		}
	}
	if confirmToken != "" {
		resp.Body.Close()
		resp, remoteErr = client.Get(srcURL + "&confirm=" + confirmToken)
		if remoteErr != nil {
			return "", remoteErr
		}
	}
	if resp.StatusCode != 200 {
		resp.Body.Close()
		return "", errors.New(fmt.Sprintf("HTTP status code %d for %s",
			resp.StatusCode, srcURL))
	}
	size, _ := strconv.Atoi(resp.Header.Get("Content-Length"))
	if dlErr := downloadToFile(resp.Body, uint64(size), srcURL,
		targetPath); dlErr != nil {
		return "", dlErr
	}
	return targetPath, nil
}
