package corpus

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
)

func TestMaybeDownload(t *testing.T) {
	payload := "story archive bytes"
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.Header().Set("Content-Length", fmt.Sprint(len(payload)))
			io.WriteString(w, payload)
		}))
	defer server.Close()

	dir := t.TempDir()
	targetPath, err := MaybeDownload(dir, "archive.tgz",
		server.URL+"/archive.tgz")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "archive.tgz"), targetPath)
	blob, readErr := os.ReadFile(targetPath)
	assert.NoError(t, readErr)
	assert.Equal(t, payload, string(blob))
	assert.Equal(t, 1, requests)

	// The second call finds the file on disk and never hits the server.
	_, err = MaybeDownload(dir, "archive.tgz", server.URL+"/archive.tgz")
	assert.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestMaybeDownloadHTTPError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	_, err := MaybeDownload(t.TempDir(), "missing.tgz",
		server.URL+"/missing.tgz")
	assert.Error(t, err)
}

func TestMaybeDownloadFromDrive(t *testing.T) {
	payload := "the real archive"
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			confirm := r.URL.Query().Get("confirm")
			if confirm == "" {
				http.SetCookie(w, &http.Cookie{
					Name:  "download_warning_13058876669334088843_abcd",
					Value: "token123",
				})
				io.WriteString(w, "<html>virus scan warning</html>")
				return
			}
			if confirm != "token123" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			io.WriteString(w, payload)
		}))
	defer server.Close()

	dir := t.TempDir()
	targetPath, err := MaybeDownloadFromDrive(dir, "cnn_stories.tgz",
		server.URL+"/uc?export=download&id=abc")
	assert.NoError(t, err)
	blob, readErr := os.ReadFile(targetPath)
	assert.NoError(t, readErr)
	assert.Equal(t, payload, string(blob))
}

func TestMaybeDownloadFromDriveDirect(t *testing.T) {
	payload := "small file, no warning page"
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, payload)
		}))
	defer server.Close()

	dir := t.TempDir()
	targetPath, err := MaybeDownloadFromDrive(dir, "dailymail_stories.tgz",
		server.URL+"/uc?export=download&id=def")
	assert.NoError(t, err)
	blob, readErr := os.ReadFile(targetPath)
	assert.NoError(t, readErr)
	assert.Equal(t, payload, string(blob))

	// Present on disk now, so no request is made and no error possible.
	server.Close()
	_, err = MaybeDownloadFromDrive(dir, "dailymail_stories.tgz",
		server.URL+"/uc?export=download&id=def")
	assert.NoError(t, err)
}

// S3MockClient is a mock implementation of S3Client.
type S3MockClient struct {
	GetObjectOutput *s3.GetObjectOutput
	GetObjectError  error
}

func (m *S3MockClient) GetObject(input *s3.GetObjectInput) (
	*s3.GetObjectOutput,
	error,
) {
	return m.GetObjectOutput, m.GetObjectError
}

func TestDownloadS3(t *testing.T) {
	blob := "archive straight from s3"
	mockSvc := &S3MockClient{
		GetObjectOutput: &s3.GetObjectOutput{
			Body:          io.NopCloser(strings.NewReader(blob)),
			ContentLength: aws.Int64(int64(len(blob))),
		},
	}
	targetPath := filepath.Join(t.TempDir(), "stories.tgz")
	err := DownloadS3(mockSvc, "s3://corpora/cnn/stories.tgz", targetPath)
	assert.NoError(t, err)
	written, readErr := os.ReadFile(targetPath)
	assert.NoError(t, readErr)
	assert.Equal(t, blob, string(written))

	mockSvc.GetObjectError = errors.New("simulated error")
	err = DownloadS3(mockSvc, "s3://corpora/cnn/stories.tgz", targetPath)
	assert.Error(t, err)
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := ParseS3URL("s3://corpora/cnn/stories.tgz")
	assert.NoError(t, err)
	assert.Equal(t, "corpora", bucket)
	assert.Equal(t, "cnn/stories.tgz", key)

	_, _, err = ParseS3URL("s3://corpora")
	assert.Error(t, err)
	_, _, err = ParseS3URL("http://corpora/key")
	assert.Error(t, err)

	assert.True(t, IsS3URL("s3://corpora/key"))
	assert.False(t, IsS3URL("http://corpora/key"))
}
