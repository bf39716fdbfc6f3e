package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lingoreader-backend/internal/client"
)

func newTextsCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "texts",
		Short: "List your texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			texts, err := e.api.ListTexts(cmd.Context())
			if err != nil {
				return err
			}
			printTexts(e.out, texts)
			return nil
		},
	}

	var importName, uploadName string

	add := &cobra.Command{
		Use:   "add <name> <file>",
		Short: "Create a text from a plain-text file (- reads stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readSource(e.in, args[1])
			if err != nil {
				return err
			}
			t, err := e.api.CreateText(cmd.Context(), args[0], string(content))
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "created text %s\n", t.ID)
			return nil
		},
	}

	imp := &cobra.Command{
		Use:   "import <url>",
		Short: "Import an article from the web",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := e.api.ImportText(cmd.Context(), args[0], importName)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "imported %q as text %s\n", t.Name, t.ID)
			return nil
		},
	}
	imp.Flags().StringVar(&importName, "name", "", "text name (default: article title)")

	upload := &cobra.Command{
		Use:   "upload <file.epub>",
		Short: "Upload an e-book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			name := uploadName
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			t, err := e.api.UploadEbook(cmd.Context(), name, filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "uploaded e-book as text %s\n", t.ID)
			return nil
		},
	}
	upload.Flags().StringVar(&uploadName, "name", "", "text name (default: file name)")

	rename := &cobra.Command{
		Use:   "rename <text-id> <name>",
		Short: "Rename a text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, err = e.api.RenameText(cmd.Context(), id, args[1])
			return err
		},
	}

	rm := &cobra.Command{
		Use:   "rm <text-id>",
		Short: "Delete a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return e.api.DeleteText(cmd.Context(), id)
		},
	}

	cmd.AddCommand(add, imp, upload, rename, rm)
	return cmd
}

func newListsCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "List your flashcard lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lists, err := e.api.ListLists(cmd.Context())
			if err != nil {
				return err
			}
			printLists(e.out, lists, uuid.Nil)
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a flashcard list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := e.api.CreateList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "created list %s\n", l.ID)
			return nil
		},
	}

	rename := &cobra.Command{
		Use:   "rename <list-id> <name>",
		Short: "Rename a flashcard list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, err = e.api.RenameList(cmd.Context(), id, args[1])
			return err
		},
	}

	rm := &cobra.Command{
		Use:   "rm <list-id>",
		Short: "Delete a flashcard list and its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return e.api.DeleteList(cmd.Context(), id)
		},
	}

	cards := &cobra.Command{
		Use:   "cards <list-id>",
		Short: "Show the flashcards of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			flashcards, err := e.api.ListFlashcards(cmd.Context(), id)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFRONT\tBACK")
			for _, c := range flashcards {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Front, c.Back)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(add, rename, rm, cards)
	return cmd
}

func newLanguagesCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported translation languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			langs, err := e.api.Languages(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
			for _, l := range langs {
				fmt.Fprintf(tw, "%s\t%s\n", l.Code, l.NativeName)
			}
			return tw.Flush()
		},
	}
}

func printTexts(w io.Writer, texts []client.Text) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKIND\tUPDATED")
	for _, t := range texts {
		kind := "text"
		if t.IsEbook {
			kind = "ebook"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Name, kind, t.UpdatedAt.Format("2006-01-02"))
	}
	_ = tw.Flush()
}

// printLists prints lists numbered from 1 and marks the selected one.
func printLists(w io.Writer, lists []client.List, selected uuid.UUID) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tCARDS")
	for i, l := range lists {
		mark := ""
		if l.ID == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%d%s\t%s\t%s\t%d\n", i+1, mark, l.ID, l.Name, l.CardCount)
	}
	_ = tw.Flush()
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func readSource(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
