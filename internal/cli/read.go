package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lingoreader-backend/internal/client"
	"github.com/heartmarshall/lingoreader-backend/internal/reader"
)

const pageWords = 60

const readHelp = `commands:
  text [N]            show the text starting at word N
  word N [M]          select word N, or words N..M
  select <text>       select arbitrary text
  front <text>        set the front
  back <text>         set the back
  lists               show lists (* marks the selected one)
  list <N|id>         choose the list to save into
  lang <src|auto> <dst>
                      change the language pair
  show                show the draft
  save                save the draft as a flashcard
  reset               clear the draft
  quit                leave`

var errQuit = errors.New("quit")

func newReadCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "read <text-id>",
		Short: "Open a text and build flashcards from it interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := newReadLoop(cmd.Context(), e, id)
			if err != nil {
				return err
			}
			return r.run(cmd.Context())
		},
	}
}

// readLoop drives one reader.Session from line-oriented input.
type readLoop struct {
	e       *env
	text    *client.Text
	words   []string
	lists   []client.List
	session *reader.Session
}

func newReadLoop(ctx context.Context, e *env, textID uuid.UUID) (*readLoop, error) {
	text, err := e.api.GetText(ctx, textID)
	if err != nil {
		return nil, err
	}
	lists, err := e.api.ListLists(ctx)
	if err != nil {
		return nil, err
	}

	session := reader.NewSession(e.log,
		reader.NewTranslator(e.api),
		reader.NewPersister(e.log, e.api),
		e.cfg.SourceLang, e.cfg.TargetLang,
	)
	if listID := defaultList(text, lists); listID != uuid.Nil {
		session.SetList(listID)
	}

	return &readLoop{
		e:       e,
		text:    text,
		words:   strings.Fields(text.Content),
		lists:   lists,
		session: session,
	}, nil
}

// defaultList picks the text's last used list when it still exists, else the
// first list.
func defaultList(text *client.Text, lists []client.List) uuid.UUID {
	for _, l := range lists {
		if l.ID == text.LastUsedListID {
			return l.ID
		}
	}
	if len(lists) > 0 {
		return lists[0].ID
	}
	return uuid.Nil
}

func (r *readLoop) run(ctx context.Context) error {
	out := r.e.out
	fmt.Fprintf(out, "reading %q (%d words)\n", r.text.Name, len(r.words))
	if r.text.IsEbook {
		fmt.Fprintf(out, "e-book: %s\nuse select to add passages from it\n", r.text.EbookURL)
	} else {
		r.printPage(1)
	}
	if len(r.lists) == 0 {
		fmt.Fprintln(out, "you have no flashcard lists yet; create one with: reader lists add <name>")
	}
	fmt.Fprintln(out, `type "help" for commands`)

	scanner := bufio.NewScanner(r.e.in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		if err := r.exec(ctx, scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if ctx.Err() != nil {
			break
		}
	}
	r.session.Wait()
	return scanner.Err()
}

func (r *readLoop) exec(ctx context.Context, line string) error {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "":
		return nil
	case "help", "?":
		fmt.Fprintln(r.e.out, readHelp)
	case "quit", "exit", "q":
		return errQuit
	case "text":
		from := 1
		if rest != "" {
			n, err := strconv.Atoi(rest)
			if err != nil {
				return fmt.Errorf("text: %q is not a number", rest)
			}
			from = n
		}
		r.printPage(from)
	case "word", "w":
		sel, err := r.wordRange(rest)
		if err != nil {
			return err
		}
		r.selectText(ctx, sel)
	case "select", "s":
		r.selectText(ctx, rest)
	case "front":
		r.session.SetFront(rest)
		r.printDraft()
	case "back":
		r.session.SetBack(rest)
		r.printDraft()
	case "lists":
		printLists(r.e.out, r.lists, r.session.Snapshot().Draft.ListID)
	case "list":
		id, err := r.resolveList(rest)
		if err != nil {
			return err
		}
		r.session.SetList(id)
		r.printDraft()
	case "lang":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return errors.New("usage: lang <src|auto> <dst>")
		}
		source := fields[0]
		if source == "auto" {
			source = ""
		}
		if err := r.session.SetLanguages(source, fields[1]); err != nil {
			return err
		}
		r.printDraft()
	case "show":
		r.printDraft()
	case "save":
		return r.save(ctx)
	case "reset":
		r.session.Reset()
		r.printDraft()
	default:
		return fmt.Errorf("unknown command %q; type help", cmd)
	}
	return nil
}

// selectText feeds a selection to the session and waits for its translation.
func (r *readLoop) selectText(ctx context.Context, raw string) {
	r.session.ProcessSelection(ctx, raw)
	r.session.Wait()
	r.printDraft()
}

func (r *readLoop) save(ctx context.Context) error {
	snap := r.session.Snapshot()
	if !snap.CanSave() {
		fmt.Fprintf(r.e.out, "nothing saved: %s\n", saveBlocker(snap))
		return nil
	}

	card, err := r.session.Save(ctx)
	if err != nil {
		return fmt.Errorf("save failed, draft kept: %w", err)
	}
	if card == nil {
		fmt.Fprintln(r.e.out, "nothing saved")
		return nil
	}

	fmt.Fprintf(r.e.out, "saved %q / %q into %s\n", card.Front, card.Back, r.listName(card.ListID))
	r.bumpCardCount(card.ListID)

	if r.text.LastUsedListID != card.ListID {
		if err := r.e.api.SetLastUsedList(ctx, r.text.ID, card.ListID); err != nil {
			r.e.log.WarnContext(ctx, "record last used list", slog.String("error", err.Error()))
		} else {
			r.text.LastUsedListID = card.ListID
		}
	}
	return nil
}

func saveBlocker(s reader.Snapshot) string {
	switch {
	case s.State == reader.StateSaving:
		return "a save is in progress"
	case s.State == reader.StateBackPending:
		return "translation pending"
	case s.Draft.Front == "":
		return "front is empty"
	case s.Draft.Back == "":
		return "back is empty"
	case s.Draft.ListID == uuid.Nil:
		return "no list selected"
	default:
		return "draft incomplete"
	}
}

func (r *readLoop) wordRange(arg string) (string, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 || len(fields) > 2 {
		return "", errors.New("usage: word N [M]")
	}

	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", fmt.Errorf("word: %q is not a number", fields[0])
	}
	to := from
	if len(fields) == 2 {
		if to, err = strconv.Atoi(fields[1]); err != nil {
			return "", fmt.Errorf("word: %q is not a number", fields[1])
		}
	}
	if from < 1 || to < from || to > len(r.words) {
		return "", fmt.Errorf("word: range must be within 1..%d", len(r.words))
	}

	sel := strings.Join(r.words[from-1:to], " ")
	return strings.TrimFunc(sel, isEdgePunct), nil
}

func isEdgePunct(c rune) bool {
	return unicode.IsPunct(c) || unicode.IsSymbol(c)
}

func (r *readLoop) resolveList(arg string) (uuid.UUID, error) {
	if arg == "" {
		return uuid.Nil, errors.New("usage: list <N|id>")
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(r.lists) {
			return uuid.Nil, fmt.Errorf("list: number must be within 1..%d", len(r.lists))
		}
		return r.lists[n-1].ID, nil
	}

	id, err := parseID(arg)
	if err != nil {
		return uuid.Nil, err
	}
	for _, l := range r.lists {
		if l.ID == id {
			return id, nil
		}
	}
	return uuid.Nil, fmt.Errorf("list %s not found", id)
}

func (r *readLoop) listName(id uuid.UUID) string {
	for _, l := range r.lists {
		if l.ID == id {
			return l.Name
		}
	}
	return "(none)"
}

func (r *readLoop) bumpCardCount(id uuid.UUID) {
	for i := range r.lists {
		if r.lists[i].ID == id {
			r.lists[i].CardCount++
		}
	}
}

func (r *readLoop) printPage(from int) {
	if len(r.words) == 0 {
		fmt.Fprintln(r.e.out, "(empty text)")
		return
	}
	if from < 1 {
		from = 1
	}
	if from > len(r.words) {
		from = len(r.words)
	}
	to := min(from+pageWords-1, len(r.words))

	writePage(r.e.out, r.words, from, to)
	if to < len(r.words) {
		fmt.Fprintf(r.e.out, "(text %d for more)\n", to+1)
	}
}

// writePage prints words from..to (1-based, inclusive) with their numbers.
func writePage(w io.Writer, words []string, from, to int) {
	var b strings.Builder
	lineLen := 0
	for i := from; i <= to; i++ {
		tok := fmt.Sprintf("[%d]%s", i, words[i-1])
		if lineLen > 0 && lineLen+len(tok) > 78 {
			b.WriteByte('\n')
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(tok)
		lineLen += len(tok)
	}
	fmt.Fprintln(w, b.String())
}

func (r *readLoop) printDraft() {
	s := r.session.Snapshot()
	source := s.SourceLanguage
	if source == "" {
		source = "auto"
	}

	out := r.e.out
	fmt.Fprintf(out, "  front: %s\n", s.Draft.Front)
	fmt.Fprintf(out, "  back:  %s\n", s.Draft.Back)
	fmt.Fprintf(out, "  list:  %s\n", r.listName(s.Draft.ListID))
	fmt.Fprintf(out, "  lang:  %s -> %s\n", source, s.TargetLanguage)
	fmt.Fprintf(out, "  state: %s\n", s.State)
	switch {
	case s.LastError != nil:
		fmt.Fprintf(out, "  error: %v\n", s.LastError)
	case s.LastMiss:
		fmt.Fprintln(out, "  (no translation found)")
	}
}
