package main

import (
	"io"
	"log"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"github.com/yyyoichi/bintext"
	"github.com/yyyoichi/bintext/codec"
)

// app holds the I/O streams and flag values shared by every command.
type app struct {
	outWriter    io.Writer
	errWriter    io.Writer
	inReader     io.Reader
	colorableOut io.Writer
	logger       *log.Logger

	charset       string
	commitOnError bool
	verbose       bool

	// prompter drives the interactive session; nil uses the terminal.
	prompter prompter
}

func newApp() *app {
	return &app{
		outWriter:    os.Stdout,
		errWriter:    os.Stderr,
		inReader:     os.Stdin,
		colorableOut: colorable.NewColorableStdout(),
		logger:       log.New(io.Discard, "", 0),
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "bintext",
		Short:         "Convert text to space-delimited binary and back",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.outWriter = cmd.OutOrStdout()
			a.errWriter = cmd.ErrOrStderr()
			a.inReader = cmd.InOrStdin()

			if a.outWriter != os.Stdout {
				a.colorableOut = a.outWriter
			}
			if a.verbose {
				a.logger = log.New(a.errWriter, "bintext: ", 0)
			}
		},
	}
	root.PersistentFlags().StringVar(&a.charset, "charset", "", "single-byte charset for character codes, e.g. windows-1252 (default is raw code points)")
	root.PersistentFlags().BoolVar(&a.commitOnError, "commit-on-error", false, "in a session, switch to ASCII even when the binary input is invalid")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log conversion diagnostics to stderr")

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newSessionCommand(a),
	)
	return root
}

func (a *app) codec() (*codec.Codec, error) {
	var opts []codec.Option
	if a.charset != "" {
		opts = append(opts, codec.WithCharset(a.charset))
	}
	return codec.New(opts...)
}

func (a *app) session(initial bintext.State) (*bintext.Session, error) {
	c, err := a.codec()
	if err != nil {
		return nil, err
	}
	opts := []bintext.Option{
		bintext.WithCodec(c),
		bintext.WithInitialState(initial),
		bintext.WithOnSwitch(func(from, to bintext.State) {
			a.logger.Printf("switched %s -> %s (%d -> %d bytes)", from.Mode, to.Mode, len(from.Text), len(to.Text))
		}),
	}
	if a.commitOnError {
		opts = append(opts, bintext.WithCommitOnError())
	}
	return bintext.New(opts...)
}
