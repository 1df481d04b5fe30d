package cnn_dailymail

import (
	"log"
	"os"
	"path/filepath"
)

// VocabBuilder obtains subword vocabularies for a problem. Loading reads a
// previously persisted vocabulary file; building may scan a full pass of
// example text to induce one.
type VocabBuilder interface {
	LoadVocab(vocabPath string) (SubwordEncoder, error)
	BuildVocab(vocabPath string, targetSize int,
		nextExample ExampleIterator) (SubwordEncoder, error)
}

// GetOrBuildVocab
// Loads dataDir/vocabFilename when it already exists, otherwise has the
// builder produce a vocabulary of the targeted size and persist it there.
// Building may consume one full traversal of the example stream; callers
// encode over a fresh one.
func GetOrBuildVocab(builder VocabBuilder, dataDir string,
	vocabFilename string, targetSize int,
	nextExample ExampleIterator) (SubwordEncoder, error) {
	vocabPath := filepath.Join(dataDir, vocabFilename)
	if _, statErr := os.Stat(vocabPath); !os.IsNotExist(statErr) {
		log.Printf("Found vocab file: %s", vocabPath)
		return builder.LoadVocab(vocabPath)
	}
	log.Printf("Generating vocab file: %s", vocabPath)
	return builder.BuildVocab(vocabPath, targetSize, nextExample)
}
