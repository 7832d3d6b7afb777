// Command mn-translit transliterates Mongolian text between the Latin and
// Cyrillic alphabets.
//
// Usage:
//
//	mn-translit [flags] [text...]
//
// Positional arguments are joined with single spaces. With no arguments the
// text is read from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mntranslit "github.com/btseee/mn-translit"
	"github.com/btseee/mn-translit/detect"
	"github.com/btseee/mn-translit/translit"
)

var version = "dev"

type options struct {
	direction string
	transNum  bool
	encoding  string
	nfc       bool
	verbose   bool

	logger *zap.Logger
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command. A nil logger is replaced by a zap
// production logger once flags are parsed.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	opts := &options{logger: logger}

	cmd := &cobra.Command{
		Use:   "mn-translit [text...]",
		Short: "Mongolian Latin ⇄ Cyrillic transliteration (MNS 5217:2012)",
		Long: `Transliterates Mongolian text between the Latin and Cyrillic alphabets.

Input is taken from the positional arguments or, when there are none, from
stdin. With --trans-num, digits are spelled out as number words when writing
Cyrillic, and number words are collapsed to digits when writing Latin.`,
		Args:         cobra.ArbitraryArgs,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("mn-translit {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&opts.direction, "direction", "d", "cyrillic",
		"output script: cyrillic, latin (aliases c, l, cyr, lat) or auto")
	flags.BoolVarP(&opts.transNum, "trans-num", "n", false,
		"convert numbers (digits ⇄ words) as well")
	flags.StringVar(&opts.encoding, "encoding", "",
		"charset of stdin, e.g. windows-1251 (default UTF-8, detected when invalid)")
	flags.BoolVar(&opts.nfc, "nfc", false, "NFC-normalize the input first")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	to, auto, err := resolveDirection(opts.direction)
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text, err = decodeInput(data, opts.encoding, opts.logger)
		if err != nil {
			return err
		}
	}

	if opts.nfc {
		text = translit.Normalize(text)
	}

	if auto {
		r := detect.Detect(text)
		to = r.Script.Opposite()
		if to == detect.ScriptUnknown {
			to = mntranslit.Cyrillic
		}
		opts.logger.Debug("detected source script",
			zap.Stringer("script", r.Script),
			zap.Float64("confidence", r.Confidence),
			zap.Stringer("target", to))
	}

	out, err := mntranslit.TransliterateTo(text, to, opts.transNum)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// resolveDirection maps the --direction value to a target script. "auto"
// defers the choice until the input has been read.
func resolveDirection(d string) (to mntranslit.Script, auto bool, err error) {
	if strings.EqualFold(strings.TrimSpace(d), "auto") {
		return detect.ScriptUnknown, true, nil
	}
	to, err = mntranslit.ParseScript(d)
	return to, false, err
}
