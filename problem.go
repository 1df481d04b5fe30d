package cnn_dailymail

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SpaceID identifies the token id space a feature is encoded in, recorded
// as problem metadata for the training side.
type SpaceID int

const (
	// SpaceGeneric marks an unclaimed id space.
	SpaceGeneric SpaceID = 0
	// SpaceEnTok marks English subword token ids.
	SpaceEnTok SpaceID = 3
)

// Problem declares one dataset generation task along with the metadata its
// consumers need: the vocabulary it encodes with, how many training shards
// a full split spreads over, and the id spaces of its features.
type Problem struct {
	Name              string
	VocabName         string
	TargetedVocabSize int
	NumShards         int
	InputSpaceID      SpaceID
	TargetSpaceID     SpaceID
}

// VocabFilename is the vocabulary name qualified by its targeted size.
func (p *Problem) VocabFilename() string {
	return fmt.Sprintf("%s.%d", p.VocabName, p.TargetedVocabSize)
}

// Generate
// Runs the full pipeline for one split: fetch and extract whatever is
// missing, resolve the split manifest, obtain the vocabulary over a first
// traversal of the examples, and return the encoded pair iterator over a
// second, together with the encoder that produced it.
func (p *Problem) Generate(dataDir string, tmpDir string, train bool,
	builder VocabBuilder) (PairIterator, SubwordEncoder, error) {
	set, openErr := OpenStorySet(tmpDir, train)
	if openErr != nil {
		return nil, nil, openErr
	}
	encoder, vocabErr := GetOrBuildVocab(builder, dataDir,
		p.VocabFilename(), p.TargetedVocabSize, set.Examples())
	if vocabErr != nil {
		return nil, nil, vocabErr
	}
	return TokenizeExamples(set.Examples(), encoder), encoder, nil
}

var problems = make(map[string]*Problem)

func init() {
	RegisterProblem(&Problem{
		Name:              "summarize_cnn_dailymail32k",
		VocabName:         "vocab.cnndailymail",
		TargetedVocabSize: 32768,
		NumShards:         100,
		InputSpaceID:      SpaceEnTok,
		TargetSpaceID:     SpaceEnTok,
	})
}

// RegisterProblem adds a problem under its name, replacing any previous
// registration.
func RegisterProblem(p *Problem) {
	problems[p.Name] = p
}

// LookupProblem returns the named problem.
func LookupProblem(name string) (*Problem, error) {
	if p, ok := problems[name]; ok {
		return p, nil
	}
	return nil, errors.New(fmt.Sprintf("no such problem: %s (have: %s)",
		name, strings.Join(ProblemNames(), ", ")))
}

// ProblemNames lists the registered problem names in sorted order.
func ProblemNames() []string {
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SplitName names a split for file naming and logs.
func SplitName(train bool) string {
	if train {
		return "train"
	}
	return "dev"
}
