package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/svstats/internal/config"
	"github.com/verte-zerg/svstats/internal/model"
	"github.com/verte-zerg/svstats/internal/store"
)

func newLabelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Manage label lookup tables",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "import <file.toml>",
		Short: "Import label sets from a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runLabelsImportCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored label sets",
		Args:  cobra.NoArgs,
		RunE:  runLabelsListCmd,
	})
	return cmd
}

func runLabelsImportCmd(cmd *cobra.Command, args []string) error {
	if err := applyLabelsDBConfig(cmd); err != nil {
		return err
	}
	sets, err := store.LoadLabelFile(args[0])
	if err != nil {
		return err
	}
	st, err := store.Open(runLabelsDB)
	if err != nil {
		return fmt.Errorf("failed to open label db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close label db: %v\n", cerr)
		}
	}()

	keys := make([]string, 0, len(sets))
	for set := range sets {
		keys = append(keys, string(set))
	}
	sort.Strings(keys)
	for _, key := range keys {
		set := model.LabelSet(key)
		if err := st.ReplaceLabels(cmd.Context(), set, sets[set]); err != nil {
			return fmt.Errorf("failed to import %s: %w", key, err)
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d)\n", key, len(sets[set])); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runLabelsListCmd(cmd *cobra.Command, _ []string) error {
	if err := applyLabelsDBConfig(cmd); err != nil {
		return err
	}
	st, err := store.Open(runLabelsDB)
	if err != nil {
		return fmt.Errorf("failed to open label db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close label db: %v\n", cerr)
		}
	}()

	infos, err := st.LabelSets(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list label sets: %w", err)
	}
	if len(infos) == 0 {
		logErrf("No labels found. Import with: svstats labels import <file.toml>\n")
		return nil
	}
	for _, info := range infos {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", info.Set, info.Count); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyLabelsDBConfig(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "labels-db", &runLabelsDB, fileCfg.Paths.LabelsDB)
	return nil
}
