package cnn_dailymail

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type FilenameTest struct {
	URL      string
	Expected string
}

var FilenameTests = []FilenameTest{
	{"http://x",
		"158b48105e50a8dfe5ed540d034d055ef48ae3a8.story"},
	{"http://cnn.com/a",
		"eacf315dbc8f64dd204437dabc3608dce4e275d8.story"},
	{"http://dailymail.co.uk/b",
		"501b37f6be1443576aaaf2a347a1ec87a107b238.story"},
}

func TestStoryFilename(t *testing.T) {
	for testIdx := range FilenameTests {
		test := FilenameTests[testIdx]
		assert.Equal(t, test.Expected, StoryFilename(test.URL))
	}
}

func writeManifest(t *testing.T, dir string, urls ...string) string {
	manifestPath := filepath.Join(dir, "all_train.txt")
	blob := strings.Join(urls, "\n") + "\n"
	if writeErr := os.WriteFile(manifestPath, []byte(blob),
		0644); writeErr != nil {
		t.Fatal(writeErr)
	}
	return manifestPath
}

func TestResolveSplit(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeManifest(t, dir,
		"http://example.com/story-two",
		"http://example.com/missing",
		"http://example.com/story-three",
		"http://example.com/story-one")
	storyPaths := []string{
		filepath.Join("cnn", "stories",
			StoryFilename("http://example.com/story-one")),
		filepath.Join("cnn", "stories",
			StoryFilename("http://example.com/story-two")),
		filepath.Join("dailymail", "stories",
			StoryFilename("http://example.com/story-three")),
	}
	fileList, err := ResolveSplit(manifestPath, storyPaths)
	assert.NoError(t, err)
	// Manifest order wins, and the unmatched URL is dropped.
	assert.Equal(t, []string{storyPaths[1], storyPaths[2], storyPaths[0]},
		fileList)
}

func TestResolveSplitCollision(t *testing.T) {
	dir := t.TempDir()
	manifestPath := writeManifest(t, dir, "http://example.com/story-one")
	name := StoryFilename("http://example.com/story-one")
	storyPaths := []string{
		filepath.Join("cnn", "stories", name),
		filepath.Join("dailymail", "stories", name),
	}
	fileList, err := ResolveSplit(manifestPath, storyPaths)
	assert.NoError(t, err)
	// The later corpus silently takes the slot on a basename collision.
	assert.Equal(t, []string{storyPaths[1]}, fileList)
}
