package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"slipstats/internal/logging"
	"slipstats/internal/replay"
	"slipstats/internal/services"
)

// DefaultExtension is the Slippi replay file extension.
const DefaultExtension = ".slp"

// Options tunes a Scanner.
type Options struct {
	// Extension selects candidate files, compared case-insensitively.
	Extension string
	// Workers bounds concurrent decodes; zero uses GOMAXPROCS.
	Workers int
}

// Scanner walks a directory tree and decodes replay files.
type Scanner struct {
	decoder   replay.Decoder
	logger    *slog.Logger
	extension string
	workers   int
}

// NewScanner builds a scanner around decoder.
func NewScanner(decoder replay.Decoder, logger *slog.Logger, opts Options) *Scanner {
	ext := strings.ToLower(strings.TrimSpace(opts.Extension))
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Scanner{
		decoder:   decoder,
		logger:    logging.NewComponentLogger(logger, "corpus"),
		extension: ext,
		workers:   workers,
	}
}

// Scan decodes every replay under root. The returned error is non-nil only when
// ctx was cancelled; the Corpus then holds the matches decoded so far.
func (s *Scanner) Scan(ctx context.Context, root string) (*Corpus, error) {
	started := time.Now()
	corpus := &Corpus{Root: root}
	logger := s.logger.With(logging.String(logging.FieldRoot, root))

	paths, diags := s.discover(root)
	corpus.Diagnostics = append(corpus.Diagnostics, diags...)
	corpus.Candidates = len(paths)
	logger.Debug("replay discovery complete", logging.Int("candidates", len(paths)))

	type result struct {
		match *replay.Match
		err   error
		done  bool
	}
	// Each worker owns exactly one slot.
	results := make([]result, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			match, err := s.decoder.Decode(ctx, path)
			if err == nil && match == nil {
				err = errors.New("decoder returned no match")
			}
			if err != nil && ctx.Err() != nil {
				return nil
			}
			results[i] = result{match: match, err: err, done: true}
			return nil
		})
	}
	_ = g.Wait()

	for i, r := range results {
		if !r.done {
			continue
		}
		if r.err != nil {
			corpus.Diagnostics = append(corpus.Diagnostics, Diagnostic{Path: paths[i], Err: r.err})
			logging.WarnWithContext(logger, "replay skipped", "replay_decode_failed",
				logging.String(logging.FieldPath, paths[i]),
				logging.Error(r.err),
				logging.String("error_kind", services.Kind(r.err)),
				logging.String(logging.FieldErrorHint, decodeHint(r.err)),
				logging.String(logging.FieldImpact, "match excluded from statistics"))
			continue
		}
		if r.match.Path == "" {
			r.match.Path = paths[i]
		}
		corpus.Matches = append(corpus.Matches, r.match)
	}

	logger.Info("corpus scan complete",
		logging.Int("candidates", corpus.Candidates),
		logging.Int("matches", corpus.Len()),
		logging.Int("skipped", len(corpus.Diagnostics)),
		logging.Duration("elapsed", time.Since(started)))

	if err := ctx.Err(); err != nil {
		return corpus, fmt.Errorf("scan %s: %w", root, err)
	}
	return corpus, nil
}

func decodeHint(err error) string {
	switch services.Kind(err) {
	case "timeout":
		return "raise decoder.timeout_seconds or check the file size"
	case "configuration":
		return "check decoder.binary in the config"
	case "validation":
		return "decoder output was not a game dump; file may be corrupt or unsupported"
	default:
		return "file may be corrupt, truncated, or still being written"
	}
}

// discover lists candidate files. Unreadable entries become diagnostics and
// the walk continues past them.
func (s *Scanner) discover(root string) ([]string, []Diagnostic) {
	var (
		paths []string
		diags []Diagnostic
	)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			diags = append(diags, Diagnostic{Path: path, Err: err})
			logging.WarnWithContext(s.logger, "path unreadable", "replay_walk_failed",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check the directory exists and is readable"),
				logging.String(logging.FieldImpact, "replays below this path are not analyzed"))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), s.extension) && (d.Type().IsRegular() || d.Type()&fs.ModeSymlink != 0) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		diags = append(diags, Diagnostic{Path: root, Err: err})
	}
	return paths, diags
}
