package cnn_dailymail

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// HighlightMarker introduces each summary sentence inside a raw
	// story file.
	HighlightMarker = "@highlight"
	// SummarySeparator joins the article body and its highlights in a
	// parsed example.
	SummarySeparator = " <summary> "
)

// endTokens are the acceptable ways for a sentence to end. Lines ending in
// anything else are treated as run-ons and get a closing period.
var endTokens = []rune{
	'.', '!', '?', '\'', '`', '"',
	'’', // right single quote
	'”', // right double quote
	')',
}

// FixRunOnSentence
// Applies sentence termination to one stripped line. Lines holding the
// highlight marker pass through untouched, as do empty lines and lines
// already ending in one of endTokens; everything else gets a period.
func FixRunOnSentence(line string) string {
	if strings.Contains(line, HighlightMarker) {
		return line
	}
	if line == "" {
		return line
	}
	lastRune, _ := utf8.DecodeLastRuneInString(line)
	for _, endToken := range endTokens {
		if lastRune == endToken {
			return line
		}
	}
	return line + "."
}

// ErrNoArticleText marks a story whose highlights begin before any article
// line. Such files carry nothing to summarize and produce no example.
var ErrNoArticleText = errors.New("story has no article text")

// ParseStory
// Reads one raw story file and joins it into a single example blob: the
// article lines, the summary separator, then the highlight lines, all
// space-joined after per-line normalization. Reading flips from article to
// highlights at the first marker line and never flips back. A story whose
// highlights are present but empty still yields a blob; one with no
// article text yields ErrNoArticleText.
func ParseStory(reader io.Reader) (string, error) {
	var story []string
	var summary []string
	readingHighlights := false
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := FixRunOnSentence(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		} else if strings.HasPrefix(line, HighlightMarker) {
			if len(story) == 0 {
				return "", ErrNoArticleText
			}
			readingHighlights = true
		} else if readingHighlights {
			summary = append(summary, line)
		} else {
			story = append(story, line)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return "", scanErr
	}
	return strings.Join(story, " ") + SummarySeparator +
		strings.Join(summary, " "), nil
}
