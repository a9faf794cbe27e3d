package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"animal-tracker/internal/client/form"
	"animal-tracker/internal/client/store"
)

// recordFlags son los flags de campos compartidos por add y update.
type recordFlags struct {
	set              []string
	photo            string
	removePhoto      bool
	birthdateUnknown bool
	yes              bool
}

func (f *recordFlags) register(cmd *cobra.Command, withRemove bool) {
	fl := cmd.Flags()
	fl.StringArrayVar(&f.set, "set", nil, "field value as key=value (repeatable), e.g. --set type=Dog")
	fl.StringVar(&f.photo, "photo", "", "image file to attach")
	fl.BoolVar(&f.birthdateUnknown, "birthdate-unknown", false, "mark the birthdate as unknown")
	fl.BoolVarP(&f.yes, "yes", "y", false, "do not ask for confirmation")
	if withRemove {
		fl.BoolVar(&f.removePhoto, "remove-photo", false, "drop the current photo")
		cmd.MarkFlagsMutuallyExclusive("photo", "remove-photo")
	}
}

func newAddCmd(a *app) *cobra.Command {
	var f recordFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new animal",
		Example: `  animalctl add --set type=Dog --set name=Rex --set breed=Labrador --photo rex.jpg
  animalctl add --set type=Cat --birthdate-unknown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := form.Parse(f.set)
			if err != nil {
				return err
			}
			if err := form.Validate(vals); err != nil {
				return err
			}

			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := a.confirm(f.yes, "Save new %s?", vals["type"])
			if err != nil || !ok {
				a.aborted(err)
				return err
			}

			res, err := form.Submit(cmd.Context(), s, form.Draft{
				Values:           vals,
				PhotoPath:        f.photo,
				BirthdateUnknown: f.birthdateUnknown,
			})
			note, err := a.refreshNote(err)
			if err != nil {
				return err
			}
			a.printf("created %s%s\n", res.ID, note)
			return nil
		},
	}
	f.register(cmd, false)
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var f recordFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an animal; unspecified fields keep their current value",
		Example: `  animalctl update 3f0c... --set location="Kennel 4" --set weight=31kg
  animalctl update 3f0c... --remove-photo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes, err := form.Parse(f.set)
			if err != nil {
				return err
			}

			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			existing, err := s.BeginEdit(args[0])
			if err != nil {
				return err
			}
			defer s.CancelEdit()

			vals := form.Merge(form.Fill(existing), changes)
			if err := form.Validate(vals); err != nil {
				return err
			}

			_, dateGiven := changes["birthdate"]
			unknown := f.birthdateUnknown || (existing.BirthdateUnknown && !dateGiven)

			ok, err := a.confirm(f.yes, "Update %s?", existing.ID)
			if err != nil || !ok {
				a.aborted(err)
				return err
			}

			res, err := form.Submit(cmd.Context(), s, form.Draft{
				Values:           vals,
				PhotoPath:        f.photo,
				RemovePhoto:      f.removePhoto,
				BirthdateUnknown: unknown,
			})
			note, err := a.refreshNote(err)
			if err != nil {
				return err
			}
			a.printf("updated %s (changes: %d)%s\n", res.ID, res.Changes, note)
			return nil
		},
	}
	f.register(cmd, true)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			label := args[0]
			if rec, found := s.Find(args[0]); found && rec.Name != "" {
				label = rec.Name + " (" + rec.ID + ")"
			}
			ok, err := a.confirm(yes, "Delete %s?", label)
			if err != nil || !ok {
				a.aborted(err)
				return err
			}

			n, err := s.Delete(cmd.Context(), args[0])
			note, err := a.refreshNote(err)
			if err != nil {
				return err
			}
			a.printf("deleted %s (changes: %d)%s\n", args[0], n, note)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// refreshNote: si la mutación se aplicó y solo falló la recarga de la lista,
// no es un error del comando; se informa al lado del resultado.
func (a *app) refreshNote(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if errors.Is(err, store.ErrReloadFailed) {
		a.log.Warn("list refresh after mutation failed", zap.Error(err))
		return " (list refresh failed)", nil
	}
	return "", err
}
