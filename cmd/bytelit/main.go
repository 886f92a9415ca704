package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dl/bytelit/internal/cli"
)

func main() {
	os.Exit(execute(append(cli.LoadConfigArgs(), os.Args[1:]...)))
}

// execute parses args into a Config and runs it, returning the exit code.
func execute(args []string) int {
	cfg := cli.DefaultConfig()
	var (
		color      string
		listStyles bool
		code       = cli.ExitOK
	)

	cmd := &cobra.Command{
		Use:   "bytelit [flags] [file...]",
		Short: "Render binary buffers as source-code literals",
		Long: `bytelit converts raw bytes into byte-array and string literals for C, C#,
Go, Rust, Nim, MASM, Perl, Python, Ruby, Bash, Java, VBScript and VBA.

With no file arguments the buffer is read from stdin. Defaults can be set in
~/.bytelit (or $BYTELIT_CONFIG_PATH), one --flag=value per line.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listStyles {
				return cli.ListStyles(cmd.OutOrStdout())
			}
			mode, err := cli.ParseColorMode(color)
			if err != nil {
				return err
			}
			cfg.Color = mode
			cfg.Paths = args
			code = cli.Run(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Style, "style", "s", cfg.Style, "output style (see --list-styles)")
	flags.IntVarP(&cfg.Wrap, "wrap", "w", cfg.Wrap, "line width")
	flags.StringVarP(&cfg.Name, "name", "n", cfg.Name, "variable name (default: per style, or derived from file names)")
	flags.StringVarP(&cfg.Comment, "comment", "c", cfg.Comment, "comment placed above each literal")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "write JSON Lines instead of source text")
	flags.StringVar(&color, "color", "auto", "color comments: auto, always or never")
	flags.BoolVarP(&cfg.Recursive, "recursive", "r", false, "format every file under directory arguments")
	flags.BoolVar(&cfg.NoIgnore, "no-ignore", false, "do not respect .gitignore files")
	flags.BoolVar(&cfg.Hidden, "hidden", false, "include hidden files and directories")
	flags.StringArrayVarP(&cfg.Globs, "glob", "g", nil, "only format files whose name matches this glob (repeatable)")
	flags.Int64Var(&cfg.MaxSize, "max-size", 0, "skip files larger than this many bytes (0 = no limit)")
	flags.IntVarP(&cfg.Workers, "workers", "j", 0, "number of worker goroutines (0 = NumCPU)")
	flags.Int64Var(&cfg.MmapThreshold, "mmap-threshold", cfg.MmapThreshold, "memory-map files of at least this many bytes")
	flags.BoolVar(&listStyles, "list-styles", false, "list supported styles and exit")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return cli.ExitUsage
	}
	return code
}
