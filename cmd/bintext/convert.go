package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yyyoichi/bintext/codec"
)

func newEncodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "encode [TEXT...]",
		Short:   "Encode text as space-delimited binary",
		Long:    "Encode text as space-delimited binary. Arguments are joined with spaces; without arguments the text is read from stdin and one trailing newline is dropped.",
		Example: "bintext encode Hi\necho -n Hi | bintext encode",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			text, err := a.input(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.outWriter, c.Encode(text))
			return nil
		},
	}
}

func newDecodeCommand(a *app) *cobra.Command {
	var marker bool
	cmd := &cobra.Command{
		Use:     "decode [BINARY...]",
		Short:   "Decode space-delimited binary into text",
		Example: "bintext decode 01001000 01101001\nbintext decode --marker 0102",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			src, err := a.input(args)
			if err != nil {
				return err
			}
			text, err := c.Decode(src)
			if err != nil {
				a.logger.Printf("decode failed: %v", err)
				if !marker {
					return fmt.Errorf("could not decode: %w", err)
				}
				text = codec.Message(err)
			}
			fmt.Fprintln(a.outWriter, text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&marker, "marker", false, "print \""+codec.Marker+"\" instead of failing on invalid input")
	return cmd
}

func (a *app) input(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(a.inReader)
	if err != nil {
		return "", fmt.Errorf("could not read input: %w", err)
	}
	text := string(b)
	if t, ok := strings.CutSuffix(text, "\r\n"); ok {
		return t, nil
	}
	return strings.TrimSuffix(text, "\n"), nil
}
