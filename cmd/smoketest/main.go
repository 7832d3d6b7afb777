// Command smoketest runs the transliteration pipeline over a directory of
// .txt files and reports invariant violations.
//
// Usage:
//
//	smoketest <directory>
//
// Checks per chunk: tokens reconstruct the input, Latin→Cyrillic is
// idempotent, Cyrillic→Latin leaves no Cyrillic letter behind, and every
// digit run survives a words round trip.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	mntranslit "github.com/btseee/mn-translit"
	"github.com/btseee/mn-translit/detect"
	"github.com/btseee/mn-translit/tokenizer"
	"github.com/btseee/mn-translit/translit"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	maxWorkers     = 4
	expectedArgs   = 2
	bytesToMBShift = 20
	detectSample   = 64 << 10 // bytes per file fed to script detection
)

// Stats aggregates results over all files.
type Stats struct {
	mu              sync.Mutex
	filesScanned    int
	totalBytes      int64
	reconFail       int
	idempotenceFail int
	residueFail     int
	numerals        int
	numeralFail     int
	scripts         map[detect.Script]int
	tokenTypeCounts map[tokenizer.TokenType]int
}

type fileState struct {
	path        string
	totalBytes  int64
	tokenCounts map[tokenizer.TokenType]int
	letters     strings.Builder // sample for script detection

	reconFailed       bool
	idempotenceFailed bool
	residueFailed     bool
	numerals          int
	numeralFail       int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	stats, err := run(context.Background(), os.Args[1], logger)
	if err != nil {
		logger.Error("smoke test failed", zap.Error(err))
		os.Exit(1)
	}
	printStats(os.Stdout, stats)
	if stats.Failures() > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, dir string, logger *zap.Logger) (*Stats, error) {
	var filePaths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	logger.Info("found files", zap.Int("count", len(filePaths)))
	start := time.Now()

	stats := &Stats{
		scripts:         make(map[detect.Script]int),
		tokenTypeCounts: make(map[tokenizer.TokenType]int),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for _, path := range filePaths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fs, err := processFile(path, logger)
			if err != nil {
				return err
			}
			mergeFileState(fs, stats)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("completed", zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))
	return stats, nil
}

func processFile(path string, logger *zap.Logger) (*fileState, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	fileStart := time.Now()
	state := &fileState{
		path:        path,
		tokenCounts: make(map[tokenizer.TokenType]int),
	}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			if err == nil {
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk, logger)
		}

		if err != nil {
			if err != io.EOF {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover, logger)
	}

	logger.Debug("file done",
		zap.String("file", filepath.Base(path)),
		zap.Duration("elapsed", time.Since(fileStart).Round(time.Millisecond)),
		zap.Int64("mb", state.totalBytes>>bytesToMBShift))
	return state, nil
}

func (fs *fileState) processChunk(chunk []byte, logger *zap.Logger) {
	text := string(chunk)
	fs.totalBytes += int64(len(chunk))
	if room := detectSample - fs.letters.Len(); room > 0 {
		fs.letters.WriteString(text[:min(room, len(text))])
	}

	tokens := tokenizer.Tokens(text)

	var sb strings.Builder
	sb.Grow(len(text))
	for _, token := range tokens {
		fs.tokenCounts[token.Type]++
		sb.WriteString(token.Text)
		if token.Type == tokenizer.Number {
			fs.checkNumeral(token.Text, logger)
		}
	}
	if !fs.reconFailed && sb.String() != text {
		fs.reconFailed = true
		logDivergence(logger, "token reconstruction", fs.path, text, sb.String())
	}

	if !fs.idempotenceFailed {
		once := translit.LatinToCyrillic(text)
		if twice := translit.LatinToCyrillic(once); twice != once {
			fs.idempotenceFailed = true
			logDivergence(logger, "latin→cyrillic idempotence", fs.path, once, twice)
		}
	}

	if !fs.residueFailed {
		latin := translit.CyrillicToLatin(text)
		if r, ok := cyrillicResidue(latin); ok {
			fs.residueFailed = true
			logger.Warn("cyrillic letter left after cyrillic→latin",
				zap.String("file", fs.path), zap.String("rune", string(r)))
		}
	}
}

// checkNumeral round-trips one digit run through number words in both
// scripts. Runs outside the convertible range are skipped.
func (fs *fileState) checkNumeral(digits string, logger *zap.Logger) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return
	}
	words, err := mntranslit.NumberToWords(n)
	if err != nil {
		return
	}
	fs.numerals++

	back, err := mntranslit.WordsToNumber(words)
	latin := mntranslit.CyrillicToLatin(words, true)
	if err != nil || back != n || latin != strconv.FormatInt(n, 10) {
		fs.numeralFail++
		logger.Warn("numeral round trip failed",
			zap.String("file", fs.path),
			zap.Int64("n", n),
			zap.String("words", words),
			zap.String("latin", latin),
			zap.Error(err))
	}
}

// cyrillicResidue returns the first rune that the Cyrillic→Latin table
// should have replaced.
func cyrillicResidue(s string) (rune, bool) {
	for _, r := range s {
		if _, ok := translit.CyrillicLatin.Lookup(string(r)); ok {
			return r, true
		}
	}
	return 0, false
}

func mergeFileState(fs *fileState, stats *Stats) {
	script := detect.Detect(fs.letters.String()).Script

	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.scripts[script]++
	stats.numerals += fs.numerals
	stats.numeralFail += fs.numeralFail

	if fs.reconFailed {
		stats.reconFail++
	}
	if fs.idempotenceFailed {
		stats.idempotenceFail++
	}
	if fs.residueFailed {
		stats.residueFail++
	}
	for tokenType, count := range fs.tokenCounts {
		stats.tokenTypeCounts[tokenType] += count
	}
}

func logDivergence(logger *zap.Logger, check, path, want, got string) {
	pos, g, w := firstDivergence(want, got)
	logger.Warn(check+" failed",
		zap.String("file", path),
		zap.Int("byte", pos),
		zap.String("got", fmt.Sprintf("0x%02x", g)),
		zap.String("want", fmt.Sprintf("0x%02x", w)))
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

// Failures returns the number of files or numerals that broke an invariant.
func (s *Stats) Failures() int {
	return s.reconFail + s.idempotenceFail + s.residueFail + s.numeralFail
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Files scanned:           %d\n", stats.filesScanned)
	fmt.Fprintf(w, "Total bytes:             %d\n", stats.totalBytes)
	fmt.Fprintf(w, "Cyrillic files:          %d\n", stats.scripts[detect.ScriptCyrillic])
	fmt.Fprintf(w, "Latin files:             %d\n", stats.scripts[detect.ScriptLatin])
	fmt.Fprintf(w, "Undetected files:        %d\n", stats.scripts[detect.ScriptUnknown])
	fmt.Fprintf(w, "Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Fprintf(w, "Idempotence FAIL:        %d\n", stats.idempotenceFail)
	fmt.Fprintf(w, "Cyrillic residue FAIL:   %d\n", stats.residueFail)
	fmt.Fprintf(w, "Numerals checked:        %d\n", stats.numerals)
	fmt.Fprintf(w, "Numeral round trip FAIL: %d\n", stats.numeralFail)
	fmt.Fprintln(w)

	totalTokens := 0
	for _, count := range stats.tokenTypeCounts {
		totalTokens += count
	}

	fmt.Fprintln(w, "Token type distribution:")
	for _, tt := range []tokenizer.TokenType{tokenizer.Word, tokenizer.Number, tokenizer.Punctuation, tokenizer.Space, tokenizer.Symbol} {
		printTokenTypeStats(w, tt, stats.tokenTypeCounts, totalTokens)
	}
}

func printTokenTypeStats(w io.Writer, tokenType tokenizer.TokenType, counts map[tokenizer.TokenType]int, total int) {
	count := counts[tokenType]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Fprintf(w, "  %-15s %d  (%.1f%%)\n", tokenType.String()+":", count, percentage)
}
