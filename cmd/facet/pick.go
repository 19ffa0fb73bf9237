package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/facet/internal/config"
	"github.com/alexisbeaulieu97/facet/internal/dropdown"
	"github.com/alexisbeaulieu97/facet/internal/form"
	"github.com/alexisbeaulieu97/facet/internal/source"
)

type pickOptions struct {
	Path           string
	GitPath        string
	IncludeTags    bool
	IncludeRemotes bool
	Width          int
}

var (
	pickRunner     = runPicker
	termIsTerminal = func(fd int) bool {
		return term.IsTerminal(fd)
	}
)

func newPickCmd(root *rootFlags) *cobra.Command {
	opts := pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick [file]",
		Short: "Choose an option interactively and print its value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Path = args[0]
			}
			return runPick(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.GitPath, "git", "", "Pick a branch from the git repository at this path")
	cmd.Flags().BoolVar(&opts.IncludeTags, "tags", false, "Include tags with --git")
	cmd.Flags().BoolVar(&opts.IncludeRemotes, "remotes", false, "Include remote branches with --git")
	cmd.Flags().IntVar(&opts.Width, "width", 40, "Picker width in cells")

	return cmd
}

func runPick(cmd *cobra.Command, root *rootFlags, opts pickOptions) error {
	if (opts.Path == "") == (opts.GitPath == "") {
		return newCommandError("pick an option", "no catalog source", errSourceUsage, "Run 'facet pick options.yaml' or 'facet pick --git .'")
	}

	log, closer, err := root.openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	title, props, err := loadPickSource(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if !termIsTerminal(int(os.Stdin.Fd())) {
		return newCommandError("start the picker", "interactive input unavailable", errNoTerminal, "Use 'facet filter' in scripts and pipelines")
	}

	model := form.New(form.Options{Title: title, Props: props, Width: opts.Width, Logger: log})
	result, err := pickRunner(model, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		log.Error(err, "picker failed")
		return newCommandError("run the picker", props.ControlID(), err, "Re-run with --log-file and --log-level debug for details")
	}
	if !result.Submitted {
		return errCancelled
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Value)
	return nil
}

func loadPickSource(ctx context.Context, opts pickOptions) (string, dropdown.Props, error) {
	if opts.GitPath != "" {
		refs, err := source.GitRefs(ctx, opts.GitPath, source.GitOptions{
			IncludeTags:    opts.IncludeTags,
			IncludeRemotes: opts.IncludeRemotes,
		})
		if err != nil {
			return "", dropdown.Props{}, newCommandError("read git references", opts.GitPath, err, "Point --git at a directory inside a git repository")
		}
		return "Git reference", dropdown.Props{
			ID:          "ref",
			Options:     refs.Options,
			Value:       refs.Current,
			Placeholder: "Select a reference",
			Searchable:  true,
			Required:    true,
		}, nil
	}

	def, err := config.ParseFile(opts.Path)
	if err != nil {
		return "", dropdown.Props{}, newCommandError("load dropdown definition", opts.Path, err, "Run 'facet validate' on the file for details")
	}
	return def.Title, def.ToProps(), nil
}

// runPicker renders on the error stream so stdout carries only the chosen value.
func runPicker(model form.Model, in io.Reader, out io.Writer) (form.Result, error) {
	program := tea.NewProgram(model,
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithMouseCellMotion(),
	)

	final, err := program.Run()
	if err != nil {
		return form.Result{}, err
	}
	return final.(form.Model).Result(), nil
}
