package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	nbdash "github.com/alnah/go-nbdash"
	"github.com/alnah/go-nbdash/internal/config"
	"github.com/alnah/go-nbdash/internal/dateutil"
	"github.com/alnah/go-nbdash/internal/fileutil"
	"github.com/alnah/go-nbdash/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrTooManyInputs = errors.New("only one input path is accepted")
	ErrNoNotebooks   = errors.New("no notebooks found")
	ErrReadNotebook  = errors.New("failed to read notebook")
	ErrReadCSS       = errors.New("failed to read CSS file")
	ErrWriteHTML     = errors.New("failed to write HTML file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// notebookExt is the extension of discovered inputs and the one replaced
// when deriving output names.
const notebookExt = ".ipynb"

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input nbdash.Input) (*nbdash.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*nbdash.Converter)(nil)

// FileToConvert represents a single notebook to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// conversionParams groups values shared by every file of a run.
type conversionParams struct {
	template string
	title    string
	css      string
	date     string
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI wins over config; flag values get the same checks as file values.
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", nbdash.ErrConfig, err)
	}

	date, err := dateutil.Resolve(cfg.Date, env.Now())
	if err != nil {
		return fmt.Errorf("%w: %w", nbdash.ErrConfig, err)
	}

	inputPath, err := resolveInputPath(positionalArgs)
	if err != nil {
		return err
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return err
	}

	extraCSS, err := readExtraCSS(cfg.CSS)
	if err != nil {
		return err
	}

	logger := logging.New(env.Stderr, flags.common.verbose, flags.common.quiet)
	defer func() { _ = logger.Sync() }()

	conv, err := nbdash.NewConverter(
		nbdash.WithLogger(logger),
		nbdash.WithAssetPath(cfg.Assets.BasePath),
		nbdash.WithStyle(cfg.Style),
		nbdash.WithHighlightStyle(cfg.Highlight.Style),
		nbdash.WithDefaultTitle(cfg.Title.Default),
	)
	if err != nil {
		return err
	}

	params := &conversionParams{
		template: cfg.Template,
		title:    cfg.Title.Override,
		css:      extraCSS,
		date:     date,
	}

	var firstErr error
	for _, f := range files {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		start := env.Now()
		result, err := convertFile(ctx, conv, f, params)
		if err != nil {
			if len(files) == 1 {
				return err
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", f.InputPath, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		logger.Debug("report written",
			zap.String("input", f.InputPath),
			zap.String("output", f.OutputPath),
			zap.String("title", result.Title),
			zap.Int("text_blocks", result.Stats.TextBlocks),
			zap.Int("image_blocks", result.Stats.ImageBlocks),
			zap.Int("skipped_cells", result.Stats.SkippedCells),
			zap.Int("skipped_images", result.Stats.SkippedImages),
			zap.Duration("elapsed", env.Now().Sub(start).Round(time.Millisecond)))

		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", f.OutputPath)
		}
	}

	return firstErr
}

// mergeFlags copies explicitly set CLI values over config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.template != "" {
		cfg.Template = flags.template
	}
	if flags.date != "" {
		cfg.Date = flags.date
	}
	if flags.title.override != "" {
		cfg.Title.Override = flags.title.override
	}
	if flags.title.defaultTitle != "" {
		cfg.Title.Default = flags.title.defaultTitle
	}
	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.css != "" {
		cfg.CSS = flags.assets.css
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.assets.highlightStyle != "" {
		cfg.Highlight.Style = flags.assets.highlightStyle
	}
}

// resolveInputPath returns the single positional argument.
func resolveInputPath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrTooManyInputs, len(args))
	}
}

// readExtraCSS loads the CSS file appended after the template style.
func readExtraCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(content), nil
}

// discoverFiles lists the notebooks to convert. A file input is taken as
// is, whatever its extension; a directory is walked for *.ipynb files,
// skipping Jupyter checkpoint directories.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", nbdash.ErrInputNotFound, inputPath)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadNotebook, err)
	}

	if !info.IsDir() {
		outPath, err := resolveOutputPath(inputPath, outputDir, "")
		if err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".ipynb_checkpoints" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), notebookExt) {
			return nil
		}
		outPath, err := resolveOutputPath(path, outputDir, inputPath)
		if err != nil {
			return err
		}
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering notebooks: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoNotebooks, inputPath)
	}
	return files, nil
}

// resolveOutputPath determines the HTML output path for a notebook.
//   - no output: next to the notebook, extension replaced by .html
//   - output ending in .html (single input only): used as is
//   - otherwise output is a directory; directory inputs keep their layout
//
// The output may never be the notebook itself.
func resolveOutputPath(inputPath, output, baseInputDir string) (string, error) {
	base := filepath.Base(fileutil.ReplaceExtension(inputPath, ".html"))

	var outPath string
	switch {
	case output == "":
		outPath = filepath.Join(filepath.Dir(inputPath), base)
	case baseInputDir == "" && isHTMLPath(output) && !fileutil.DirExists(output):
		outPath = output
	case baseInputDir != "":
		rel, err := filepath.Rel(baseInputDir, inputPath)
		if err != nil {
			return "", fmt.Errorf("%w: %v", nbdash.ErrInvalidOutputPath, err)
		}
		outPath = filepath.Join(output, filepath.Dir(rel), base)
	default:
		outPath = filepath.Join(output, base)
	}

	if samePath(outPath, inputPath) {
		return "", fmt.Errorf("%w: %s would overwrite the notebook", nbdash.ErrInvalidOutputPath, outPath)
	}
	return outPath, nil
}

func isHTMLPath(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".html" || ext == ".htm"
}

// samePath compares two paths after making them absolute.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// convertFile reads, converts and atomically writes one notebook.
func convertFile(ctx context.Context, conv Converter, f FileToConvert, params *conversionParams) (*nbdash.ConvertResult, error) {
	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided or discovered path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", nbdash.ErrInputNotFound, f.InputPath)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadNotebook, err)
	}

	result, err := conv.Convert(ctx, nbdash.Input{
		Notebook: content,
		Template: params.template,
		Title:    params.title,
		CSS:      params.css,
		Date:     params.date,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.InputPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: creating output directory: %w", ErrWriteHTML, err)
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, result.HTML, filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}

	return result, nil
}
