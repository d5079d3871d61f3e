package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notegen"
)

type catalogEntry struct {
	notegen.AliasEntry
	Forms []string `json:"forms"`
}

func newCatalogCmd(s *settings) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the expanded note aliases without generating code",
		Long: `Fetch the table, expand every alias group and print one line per variant:
identifier, published name, frequency and accepted spellings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, opts, err := s.resolve(cmd)
			if err != nil {
				return err
			}

			svc, err := notegen.New(uri, opts...)
			if err != nil {
				return fmt.Errorf("failed to initialize generator: %w", err)
			}

			catalog, err := svc.Catalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to build catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				entries := make([]catalogEntry, 0, catalog.Len())
				for _, e := range catalog.Entries() {
					entries = append(entries, catalogEntry{AliasEntry: e, Forms: e.SerializedForms()})
				}
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			}

			for _, e := range catalog.Entries() {
				fmt.Fprintf(out, "%-8s %-8s %10s  %s\n", e.Identifier, e.RawName, e.Literal, strings.Join(e.SerializedForms(), ","))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
