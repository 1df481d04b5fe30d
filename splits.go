package cnn_dailymail

import (
	"crypto/sha1"
	"encoding/hex"
	"log"
	"path/filepath"

	"github.com/wbrown/cnn_dailymail/corpus"
)

// StoryExt is the extension the corpora use for extracted story files.
const StoryExt = ".story"

// StoryFilename
// A story's on-disk name is the lowercase hex SHA-1 digest of its
// canonical URL plus the story extension.
func StoryFilename(url string) string {
	digest := sha1.Sum([]byte(url))
	return hex.EncodeToString(digest[:]) + StoryExt
}

// ResolveSplit
// Maps every URL in the split manifest onto an extracted story file,
// preserving manifest order. URLs with no matching story are logged and
// skipped. Basename collisions across corpora are not detected; the later
// story path silently takes the slot.
func ResolveSplit(manifestPath string, storyPaths []string) ([]string, error) {
	urls, readErr := corpus.ReadManifest(manifestPath)
	if readErr != nil {
		return nil, readErr
	}
	pathsByName := make(map[string]string, len(storyPaths))
	for _, storyPath := range storyPaths {
		pathsByName[filepath.Base(storyPath)] = storyPath
	}
	fileList := make([]string, 0, len(urls))
	for _, url := range urls {
		storyPath, ok := pathsByName[StoryFilename(url)]
		if !ok {
			log.Printf("Missing file: %s", url)
			continue
		}
		fileList = append(fileList, storyPath)
	}
	log.Printf("Found %d examples", len(fileList))
	return fileList, nil
}
