package cnn_dailymail

import (
	"errors"
	"log"
	"os"

	lru "github.com/hashicorp/golang-lru"

	"github.com/wbrown/cnn_dailymail/corpus"
)

// STORY_LRU_SZ bounds the parsed story cache. The dev split fits whole;
// the train split degrades to plain re-reads on the second pass.
const STORY_LRU_SZ = 16384

// ExampleIterator produces one parsed example blob per call, returning nil
// once the split is exhausted.
type ExampleIterator func() *string

// StorySet is one resolved split: the ordered story files that back a
// generation run. The file list is fixed when the set is opened, so every
// traversal observes the same stories in the same order.
type StorySet struct {
	files []string
	cache *lru.ARCCache
}

// OpenStorySet
// Downloads and extracts whatever is missing under tmpDir, resolves the
// split manifest against the extracted stories, and returns the ordered
// story set for the selected split.
func OpenStorySet(tmpDir string, train bool) (*StorySet, error) {
	srcs, srcErr := corpus.DefaultSources()
	if srcErr != nil {
		return nil, srcErr
	}
	return OpenStorySetFrom(srcs, tmpDir, train)
}

// OpenStorySetFrom is OpenStorySet with explicit corpus sources.
func OpenStorySetFrom(srcs corpus.Sources, tmpDir string, train bool) (
	*StorySet, error) {
	storyPaths, manifestPath, dlErr := srcs.MaybeDownloadCorpora(tmpDir,
		train)
	if dlErr != nil {
		return nil, dlErr
	}
	files, resolveErr := ResolveSplit(manifestPath, storyPaths)
	if resolveErr != nil {
		return nil, resolveErr
	}
	cache, _ := lru.NewARC(STORY_LRU_SZ)
	return &StorySet{files: files, cache: cache}, nil
}

// Len returns the number of resolved stories in the split.
func (set *StorySet) Len() int {
	return len(set.files)
}

// Examples
// Returns an iterator over the split's parsed example blobs. A single
// producer parses stories ahead of the consumer; files with no article
// text are dropped. Each call starts a fresh pass, and every pass yields
// the same examples in the same order, so a vocabulary pass and an
// encoding pass can each traverse the set on their own.
func (set *StorySet) Examples() ExampleIterator {
	var parsed chan string
	return func() *string {
		if parsed == nil {
			parsed = make(chan string, 4)
			go func() {
				for _, storyPath := range set.files {
					if blob, ok := set.parse(storyPath); ok {
						parsed <- blob
					}
				}
				close(parsed)
			}()
		}
		if blob, more := <-parsed; more {
			return &blob
		}
		return nil
	}
}

// parse returns the example blob for one story file, consulting the cache
// first. The second return is false for stories that produce no example.
func (set *StorySet) parse(storyPath string) (string, bool) {
	if cached, ok := set.cache.Get(storyPath); ok {
		return cached.(string), true
	}
	storyFile, openErr := os.Open(storyPath)
	if openErr != nil {
		log.Fatal(openErr)
	}
	blob, parseErr := ParseStory(storyFile)
	storyFile.Close()
	if errors.Is(parseErr, ErrNoArticleText) {
		return "", false
	} else if parseErr != nil {
		log.Fatal(parseErr)
	}
	set.cache.Add(storyPath, blob)
	return blob, true
}
