package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"animal-tracker/internal/client/form"
	"animal-tracker/internal/client/view"
)

func newListCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List animals, optionally filtered by a search term",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			s.SetSearch(search)
			rows := view.Render(s.Records(), s.Search())
			if len(rows) == 0 {
				a.printf("no animals found\n")
				return nil
			}
			return view.WriteTable(a.out, rows)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "match name, type, breed, location, animal id or description")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of one animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			rec, ok := s.Find(args[0])
			if !ok {
				return fmt.Errorf("animal %s not found", args[0])
			}
			return view.WriteDetails(a.out, view.Details(rec))
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var out, search string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export animals to an .xlsx spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			records := view.Filter(s.Records(), search)

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := view.ExportXLSX(f, records); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.printf("exported %d animals to %s\n", len(records), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "animals.xlsx", "output file")
	cmd.Flags().StringVarP(&search, "search", "s", "", "export only matching animals")
	return cmd
}

func newPhotoCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "photo <id>",
		Short: "Save an animal's photo to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			rec, ok := s.Find(args[0])
			if !ok {
				return fmt.Errorf("animal %s not found", args[0])
			}
			if rec.Photo == "" {
				return fmt.Errorf("animal %s has no photo", args[0])
			}
			data, mt, err := form.DecodePhoto(rec.Photo)
			if err != nil {
				return err
			}
			if out == "" {
				out = rec.ID + form.PhotoExt(mt)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			a.printf("wrote %s (%s, %d bytes)\n", out, mt, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: <id><ext>)")
	return cmd
}
