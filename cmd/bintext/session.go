package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/yyyoichi/bintext"
	"github.com/yyyoichi/bintext/codec"
)

// prompter is the terminal side of an interactive session.
type prompter interface {
	// Select shows items and returns the index picked.
	Select(label string, items []string, cursor int) (int, error)
	// Edit lets the user change value and returns the result.
	Edit(label, value string) (string, error)
}

type promptuiPrompter struct{}

func (promptuiPrompter) Select(label string, items []string, cursor int) (int, error) {
	p := promptui.Select{
		Label:     label,
		Items:     items,
		Size:      len(items),
		CursorPos: cursor,
	}
	i, _, err := p.Run()
	return i, err
}

func (promptuiPrompter) Edit(label, value string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   value,
		AllowEdit: true,
	}
	return p.Run()
}

const (
	itemASCII = iota
	itemBinary
	itemEdit
	itemQuit
)

// tabs maps the mode items of the menu to the modes they select.
var tabs = map[int]bintext.Mode{
	itemASCII:  bintext.ASCII,
	itemBinary: bintext.Binary,
}

var (
	styleMode        = promptui.Styler(promptui.FGBold)
	stylePlaceholder = promptui.Styler(promptui.FGFaint)
	styleMonospace   = promptui.Styler(promptui.FGCyan)
)

func newSessionCommand(a *app) *cobra.Command {
	var (
		modeName string
		text     string
	)
	cmd := &cobra.Command{
		Use:     "session",
		Short:   "Edit one buffer interactively, switching between ASCII and binary",
		Example: "bintext session\nbintext session --mode binary --text '01001000 01101001'",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := bintext.ParseMode(modeName)
			if err != nil {
				return err
			}
			s, err := a.session(bintext.State{Mode: m, Text: text})
			if err != nil {
				return err
			}
			p := a.prompter
			if p == nil {
				p = promptuiPrompter{}
			}
			return a.runSession(s, p)
		},
	}
	cmd.Flags().StringVar(&modeName, "mode", bintext.ASCII.String(), "initial mode: ascii or binary")
	cmd.Flags().StringVar(&text, "text", "", "initial buffer content, written in the initial mode")
	return cmd
}

func (a *app) runSession(s *bintext.Session, p prompter) error {
	a.printState(s)
	for {
		items := []string{
			bintext.ASCII.DisplayName(),
			bintext.Binary.DisplayName(),
			"Edit",
			"Quit",
		}
		i, err := p.Select("Mode", items, itemOf(s.Mode()))
		if err != nil {
			// Ctrl-C or Ctrl-D ends the session.
			if isCancel(err) {
				return nil
			}
			return err
		}
		switch i {
		case itemASCII, itemBinary:
			m := tabs[i]
			if err := s.Switch(m); err != nil {
				a.logger.Printf("switch to %s failed: %v", m, err)
				fmt.Fprintln(a.errWriter, codec.Message(err))
				continue
			}
		case itemEdit:
			text, err := p.Edit(s.Mode().DisplayName(), s.Text())
			if err != nil {
				if isCancel(err) {
					continue
				}
				return err
			}
			s.Edit(text)
		case itemQuit:
			return nil
		}
		a.printState(s)
	}
}

func itemOf(m bintext.Mode) int {
	for i, tab := range tabs {
		if tab == m {
			return i
		}
	}
	return itemASCII
}

func (a *app) printState(s *bintext.Session) {
	m := s.Mode()
	text := s.Text()
	switch {
	case text == "":
		text = stylePlaceholder(m.Placeholder())
	case m.Monospace():
		text = styleMonospace(text)
	}
	fmt.Fprintf(a.colorableOut, "%s %s\n", styleMode("["+m.DisplayName()+"]"), text)
}

func isCancel(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}
