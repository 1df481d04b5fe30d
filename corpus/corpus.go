package corpus

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/edsrzf/mmap-go"
	"github.com/yargevad/filepathx"
)

// Sources names where the raw story corpora and the split manifests come
// from. The defaults are the published locations; every field can be
// overridden from the environment so mirrors or s3:// copies can stand in.
type Sources struct {
	CnnStoriesURL       string `env:"CNN_STORIES_URL" envDefault:"https://drive.google.com/uc?export=download&id=0BwmD_VLjROrfTHk4NFg2SndKcjQ"`
	DailyMailStoriesURL string `env:"DAILYMAIL_STORIES_URL" envDefault:"https://drive.google.com/uc?export=download&id=0BwmD_VLjROrfM1BxdkxVaTY2bWs"`
	TrainManifestURL    string `env:"CNN_DAILYMAIL_TRAIN_URLS" envDefault:"https://raw.githubusercontent.com/abisee/cnn-dailymail/master/url_lists/all_train.txt"`
	DevManifestURL      string `env:"CNN_DAILYMAIL_DEV_URLS" envDefault:"https://raw.githubusercontent.com/abisee/cnn-dailymail/master/url_lists/all_val.txt"`
}

// DefaultSources resolves the corpus locations against the environment.
func DefaultSources() (Sources, error) {
	var srcs Sources
	err := env.Parse(&srcs)
	return srcs, err
}

// MaybeDownloadCorpora
// Ensures both story corpora are downloaded and extracted under tmpDir,
// returning every extracted story path with the CNN corpus first, plus the
// split manifest path for the selected split. Corpora that are already
// extracted are left alone.
func (srcs Sources) MaybeDownloadCorpora(tmpDir string, train bool) (
	storyPaths []string, manifestPath string, err error) {
	corpora := []struct {
		archive string
		url     string
		dir     string
	}{
		{"cnn_stories.tgz", srcs.CnnStoriesURL,
			filepath.Join(tmpDir, "cnn", "stories")},
		{"dailymail_stories.tgz", srcs.DailyMailStoriesURL,
			filepath.Join(tmpDir, "dailymail", "stories")},
	}
	for _, corpus := range corpora {
		if _, statErr := os.Stat(corpus.dir); !os.IsNotExist(statErr) {
			log.Printf("Skipping %s... already extracted.", corpus.archive)
		} else {
			archivePath, dlErr := MaybeDownloadFromDrive(tmpDir,
				corpus.archive, corpus.url)
			if dlErr != nil {
				return nil, "", dlErr
			}
			if extractErr := ExtractTarGz(archivePath,
				tmpDir); extractErr != nil {
				return nil, "", extractErr
			}
		}
		corpusPaths, globErr := GlobStories(corpus.dir)
		if globErr != nil {
			return nil, "", globErr
		}
		storyPaths = append(storyPaths, corpusPaths...)
	}
	manifest, manifestURL := "all_train.txt", srcs.TrainManifestURL
	if !train {
		manifest, manifestURL = "all_val.txt", srcs.DevManifestURL
	}
	manifestPath, err = MaybeDownload(tmpDir, manifest, manifestURL)
	if err != nil {
		return nil, "", err
	}
	return storyPaths, manifestPath, nil
}

// GlobStories
// Finds all `.story` files under a corpus directory. An extracted corpus
// with no story files is an error.
func GlobStories(dirPath string) ([]string, error) {
	storyPaths, err := filepathx.Glob(dirPath + "/**/*.story")
	if err != nil {
		return nil, err
	}
	if len(storyPaths) == 0 {
		return nil, errors.New(fmt.Sprintf(
			"%s does not contain any .story files", dirPath))
	}
	return storyPaths, nil
}

// ReadManifest
// Maps a split manifest into memory and returns its canonical URLs in file
// order, one per line, stripped of surrounding whitespace. Blank lines are
// dropped.
func ReadManifest(manifestPath string) ([]string, error) {
	manifestFile, openErr := os.Open(manifestPath)
	if openErr != nil {
		return nil, openErr
	}
	defer manifestFile.Close()
	mapped, mmapErr := mmap.Map(manifestFile, mmap.RDONLY, 0)
	if mmapErr != nil {
		return nil, errors.New(fmt.Sprintf("error trying to mmap %s: %s",
			manifestPath, mmapErr))
	}
	defer mapped.Unmap()
	lines := strings.Split(string(mapped), "\n")
	urls := make([]string, 0, len(lines))
	for _, line := range lines {
		if url := strings.TrimSpace(line); url != "" {
			urls = append(urls, url)
		}
	}
	return urls, nil
}
