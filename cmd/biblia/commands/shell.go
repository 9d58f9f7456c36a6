package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"biblia/internal/books"
	"biblia/internal/domain"
	"biblia/internal/screen"
)

const shellHelp = `commands:
  verse <reference>        e.g. verse 3:16
  chapter <number>         e.g. chapter 23
  range <start> <end>      e.g. range 3:16 3:19
  search <term...>         e.g. search fe
  book [id]                show or change the current book
  books                    list books
  help                     this text
  quit                     leave
legacy names (index, bible/verse, bible/chapter, bible/range, bible/search) also work.
`

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive lookup session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := &shell{
				out:  cmd.OutOrStdout(),
				book: wire.Config.Book,
				set:  wire.Screens,
			}
			return sh.run(cmd, cmd.InOrStdin())
		},
	}
}

type shell struct {
	out  io.Writer
	book domain.BookID
	set  *screen.Set
}

func (s *shell) run(cmd *cobra.Command, in io.Reader) error {
	ctx := cmd.Context()
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(s.out, "[%s] > ", books.Label(s.book))
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		name, rest := fields[0], fields[1:]
		switch name {
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprint(s.out, shellHelp)
			continue
		case "books":
			for _, b := range books.All() {
				fmt.Fprintf(s.out, "  %-14s %s\n", b.ID, b.Label)
			}
			continue
		case "book":
			s.chooseBook(rest)
			continue
		}

		scr, err := s.set.Get(name)
		if err != nil {
			fmt.Fprintf(s.out, "%v (try help)\n", err)
			continue
		}
		in := shellInput(scr.Kind(), rest)
		in.Book = s.book
		if err := scr.Submit(ctx, in); err != nil {
			fmt.Fprintf(s.out, "Error: %s\n", wire.Printer.Describe(err))
			continue
		}
		snap, err := scr.Wait(ctx)
		if err != nil {
			return err
		}
		switch snap.State {
		case screen.Resolved:
			renderText(s.out, snap.Result, snap.Input)
		case screen.Failed:
			fmt.Fprintln(s.out, wire.Printer.Describe(snap.Err))
		}
	}
}

func (s *shell) chooseBook(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, s.book)
		return
	}
	id, ok := books.Lookup(strings.Join(args, " "))
	if !ok {
		fmt.Fprintf(s.out, "Error: %s\n", wire.Printer.Text(domain.MsgUnknownBook))
		return
	}
	s.book = id
}

// shellInput maps positional words onto the fields of kind. Missing words
// stay empty and are caught by validation.
func shellInput(kind domain.Kind, args []string) domain.Input {
	at := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	switch kind {
	case domain.KindVerse:
		return domain.Input{Reference: at(0)}
	case domain.KindChapter:
		return domain.Input{Chapter: at(0)}
	case domain.KindRange:
		return domain.Input{Start: at(0), End: at(1)}
	default:
		return domain.Input{Term: strings.Join(args, " ")}
	}
}
