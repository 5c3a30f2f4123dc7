package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/jsonl"
	"github.com/fwojciec/scrollstory/yaml"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultImageConcurrency bounds how many images decode at once.
const DefaultImageConcurrency = 4

// App encapsulates the application logic for testing.
type App struct {
	Path   string
	Loader scrollstory.StoryLoader
	Images scrollstory.ImageLoader // Optional; chapters keep placeholders without it
	Viewer scrollstory.Viewer
	Logger *zap.Logger

	Concurrency int
}

// Run loads the story and its images and presents it.
func (a *App) Run(ctx context.Context) error {
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	story, err := a.Loader.Load(a.Path)
	if err != nil {
		return fmt.Errorf("load story: %w", err)
	}
	if len(story.Chapters) == 0 {
		return scrollstory.ErrNoChapters
	}

	chapters := scrollstory.NewChapters(story.Chapters)
	if err := a.loadPictures(ctx, logger, chapters); err != nil {
		return err
	}
	logger.Info("story loaded",
		zap.String("path", a.Path),
		zap.String("title", story.Title),
		zap.Int("chapters", len(chapters)))

	return a.Viewer.View(ctx, &scrollstory.Narrative{
		Title:    story.Title,
		Chapters: chapters,
		Finale:   story.Finale,
	})
}

// loadPictures decodes chapter images concurrently. A failed image is logged
// and leaves its chapter with a placeholder.
func (a *App) loadPictures(ctx context.Context, logger *zap.Logger, chapters []scrollstory.Chapter) error {
	if a.Images == nil {
		return nil
	}
	limit := a.Concurrency
	if limit <= 0 {
		limit = DefaultImageConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range chapters {
		if chapters[i].Image.Path == "" {
			continue
		}
		path := a.resolve(chapters[i].Image.Path)
		g.Go(func() error {
			pic, err := a.Images.Load(gctx, path)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Warn("image decode failed",
					zap.Int("chapter", i), zap.String("path", path), zap.Error(err))
				return nil
			}
			chapters[i].Picture = pic
			return nil
		})
	}
	return g.Wait()
}

// resolve interprets image paths relative to the story file.
func (a *App) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(a.Path), path)
}

// loaderFor picks a story loader by file extension.
func loaderFor(path string) (scrollstory.StoryLoader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.NewLoader(), nil
	case ".jsonl":
		return jsonl.NewLoader(), nil
	}
	return nil, fmt.Errorf("unsupported story format %q (want .yaml, .yml or .jsonl)", filepath.Ext(path))
}
