package cli

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reoring/assetskema/dsl"
	js "github.com/reoring/assetskema/jsonschema"
	"github.com/reoring/assetskema/schemagen"
)

func schemaCmd(a *app) *cobra.Command {
	var (
		names       []string
		combine     bool
		id          string
		title       string
		description string
		outDir      string
		stdout      bool
	)
	c := &cobra.Command{
		Use:   "schema",
		Short: "Write JSON Schema documents for the models",
		Long: "Writes one document per model into the output directory, named after the model " +
			"(meshTriangleCount.schema.json). With --combine the selected models become the " +
			"definitions of a single document identified by --id.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			models, err := a.selectModels(names)
			if err != nil {
				return err
			}
			opts := []schemagen.Option{}
			if id != "" {
				opts = append(opts, schemagen.WithID(id))
			}
			if title != "" {
				opts = append(opts, schemagen.WithTitle(title))
			}
			if description != "" {
				opts = append(opts, schemagen.WithDescription(description))
			}

			var docs []*js.Schema
			if combine {
				if id == "" {
					return errors.New("--combine requires --id")
				}
				doc, err := schemagen.Combine(models, opts...)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
			} else {
				if id != "" && len(models) > 1 {
					return errors.New("--id applies to a single model or to --combine")
				}
				for _, m := range models {
					doc, err := schemagen.Generate(m, opts...)
					if err != nil {
						return err
					}
					docs = append(docs, doc)
				}
			}

			for _, doc := range docs {
				if stdout {
					b, err := schemagen.Marshal(doc)
					if err != nil {
						return err
					}
					if _, err := cmd.OutOrStdout().Write(b); err != nil {
						return err
					}
					continue
				}
				path, err := schemagen.WriteFile(doc, filepath.Join(outDir, filepath.Base(doc.ID)))
				if err != nil {
					return err
				}
				a.log.Info("schema.written", "id", doc.ID, "path", path)
			}
			return nil
		},
	}
	c.Flags().StringSliceVarP(&names, "model", "m", nil, "model to export (repeatable; default all)")
	c.Flags().BoolVar(&combine, "combine", false, "export the models as definitions of one document")
	c.Flags().StringVar(&id, "id", "", "document $id")
	c.Flags().StringVar(&title, "title", "", "document title")
	c.Flags().StringVar(&description, "description", "", "document description")
	c.Flags().StringVarP(&outDir, "out", "o", schemagen.DefaultDir, "output directory")
	c.Flags().BoolVar(&stdout, "stdout", false, "print the documents instead of writing files")
	return c
}

// selectModels resolves names, or returns every model when names is empty.
func (a *app) selectModels(names []string) ([]*dsl.ObjectSchema, error) {
	if len(names) == 0 {
		return a.rules.Models(), nil
	}
	out := make([]*dsl.ObjectSchema, 0, len(names))
	for _, n := range names {
		m, err := a.rules.Model(n)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
