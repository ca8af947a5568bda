package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gogpu/ratingbar"
	"github.com/gogpu/ratingbar/internal/sheet"
)

func renderCmd() *cobra.Command {
	var (
		configPath string
		output     string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a sheet of rating bars",
		Long: `Render draws every bar of the sheet at its configured rating.
The output format follows the file extension (png, jpg, gif, bmp, tif).

With --watch the sheet is rendered again whenever the config file changes,
until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch && configPath == "" {
				return errors.New("--watch requires --config")
			}
			if err := renderSheet(configPath, output); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchFile(ctx, configPath, func() error {
				return renderSheet(configPath, output)
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Sheet file (YAML); built-in sample when empty")
	cmd.Flags().StringVarP(&output, "output", "o", "ratingbar.png", "Output image file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render when the config file changes")
	return cmd
}

// loadSheet returns the sheet at path, or the built-in sheet for "".
func loadSheet(path string) (*sheet.Sheet, error) {
	if path == "" {
		return sheet.Default(), nil
	}
	return sheet.Load(path)
}

func renderSheet(configPath, output string) error {
	s, err := loadSheet(configPath)
	if err != nil {
		return err
	}
	img, err := s.Render()
	if err != nil {
		return err
	}
	return saveImage(img, output)
}

// saveImage encodes img in the format implied by the extension of path.
func saveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	b := img.Bounds()
	ratingbar.Logger().Info("image written",
		slog.String("path", path),
		slog.String("size", humanize.Bytes(uint64(info.Size()))),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()))
	return nil
}

// watchFile calls fn after every change to path until ctx is done. The
// parent directory is watched so that editors which replace the file on
// save are still seen. Errors from fn are logged, not returned.
func watchFile(ctx context.Context, path string, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	log := ratingbar.Logger()
	log.Info("watching for changes", slog.String("path", target))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug("config changed", slog.String("op", ev.Op.String()))
			if err := fn(); err != nil {
				log.Warn("re-render failed", slog.String("error", err.Error()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}
