package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moondown/moondown/internal/logging"
	"github.com/moondown/moondown/internal/ui/pretty"
	"github.com/moondown/moondown/pkg/config"
	"github.com/moondown/moondown/pkg/difftext"
	"github.com/moondown/moondown/pkg/document"
	"github.com/moondown/moondown/pkg/fsutil"
	"github.com/moondown/moondown/pkg/renumber"
	"github.com/moondown/moondown/pkg/syntax/goldmarkquery"
)

func newRenumberCommand(flags *rootFlags) *cobra.Command {
	var write bool
	var backup bool
	var flavor string

	cmd := &cobra.Command{
		Use:   "renumber [files...]",
		Short: "Fix ordered-list numbering in Markdown files",
		Long: `Renumber recomputes the ordinal numbers of ordered list items so every
item's visible number matches its logical position. A list's first explicit
number is preserved, nested lists are numbered independently, and content
inside fenced code blocks is left untouched.

By default a unified diff of the corrections is printed; --write rewrites
the files in place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("write") {
				cfg.Write = write
			}
			if cmd.Flags().Changed("backup") {
				cfg.Backup = backup
			}
			if cmd.Flags().Changed("flavor") {
				cfg.Flavor = flavor
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if !flags.debug && cfg.LogLevel != "" {
				logging.SetLevel(cfg.LogLevel)
			}

			return runRenumber(cmd.Context(), cmd.OutOrStdout(), flags.color, cfg, args)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&backup, "backup", false, "create a sidecar backup before rewriting")
	cmd.Flags().StringVar(&flavor, "flavor", config.FlavorCommonMark,
		"markdown flavor: commonmark or gfm")

	return cmd
}

// resolveConfig loads an explicit config file or discovers one upward from
// the working directory.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	return config.Discover(cwd)
}

// runRenumber processes each file and reports or applies the corrections.
func runRenumber(ctx context.Context, out io.Writer, color string, cfg *config.Config, paths []string) error {
	logger := logging.Default()
	styles := pretty.NewStyles(pretty.IsColorEnabled(color, out))

	engine := renumber.NewEngine(
		renumber.WithSyntaxProvider(goldmarkquery.New(cfg.Flavor)),
	)

	filesChanged := 0
	for _, path := range paths {
		changed, err := renumberFile(ctx, out, styles, engine, cfg, path)
		if err != nil {
			logger.Error("renumber failed",
				logging.FieldPath, path,
				logging.FieldError, err,
			)
			return err
		}
		if changed {
			filesChanged++
		}
	}

	writeSummary(out, styles, cfg.Write, len(paths), filesChanged)

	if filesChanged > 0 && !cfg.Write {
		return ErrDifferencesFound
	}
	return nil
}

func renumberFile(
	ctx context.Context,
	out io.Writer,
	styles *pretty.Styles,
	engine *renumber.Engine,
	cfg *config.Config,
	path string,
) (bool, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read file: %w", err)
	}

	snap := document.NewSnapshot(original)
	tx, err := engine.Transaction(snap)
	if err != nil {
		return false, fmt.Errorf("compute renumbering: %w", err)
	}
	if tx == nil {
		return false, nil
	}

	if cfg.Write {
		if cfg.Backup {
			if _, err := fsutil.CreateBackup(ctx, path); err != nil {
				return false, err
			}
		}
		if _, err := fsutil.WriteAtomicIfChanged(ctx, path, tx.After.Content); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "%s %s\n",
			styles.Success.Render("fixed"),
			styles.FilePath.Render(path),
		)
		return true, nil
	}

	diff := difftext.Compute(path, original, tx.After.Content)
	if !diff.HasChanges() {
		return false, nil
	}
	writeDiff(out, styles, diff)
	return true, nil
}

// writeDiff outputs a single file's diff with color.
func writeDiff(out io.Writer, styles *pretty.Styles, diff *difftext.Diff) {
	fmt.Fprintln(out, styles.DiffHeader.Render(diff.GitHeader()))

	for _, line := range strings.Split(diff.String(), "\n") {
		if line == "" {
			continue
		}
		var styled string
		switch {
		case strings.HasPrefix(line, "@@"):
			styled = styles.DiffHunk.Render(line)
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			styled = styles.DiffHeader.Render(line)
		case strings.HasPrefix(line, "+"):
			styled = styles.DiffAdd.Render(line)
		case strings.HasPrefix(line, "-"):
			styled = styles.DiffRemove.Render(line)
		default:
			styled = styles.DiffContext.Render(line)
		}
		fmt.Fprintln(out, styled)
	}

	fmt.Fprintln(out) // Blank line between files
}

func writeSummary(out io.Writer, styles *pretty.Styles, wrote bool, total, changed int) {
	width := pretty.TerminalWidth(out)
	fmt.Fprintln(out, styles.Dim.Render(strings.Repeat("─", min(width, 60))))

	fileWord := "files"
	if total == 1 {
		fileWord = "file"
	}

	switch {
	case changed == 0:
		fmt.Fprintf(out, "%s %d %s already numbered correctly\n",
			styles.Success.Render("✓"), total, fileWord)
	case wrote:
		fmt.Fprintf(out, "%s %d of %d %s rewritten\n",
			styles.Success.Render("✓"), changed, total, fileWord)
	default:
		fmt.Fprintf(out, "%d of %d %s need renumbering\n", changed, total, fileWord)
	}
}
