package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect and validate extraction vocabularies",
}

var lexiconValidateCmd = &cobra.Command{
	Use:   "validate <lexicon.yaml>",
	Short: "Check that a lexicon file parses and all patterns compile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := loadLexicon(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: lexicon %q valid (%d events, %d assets, %d mechanisms, %d causal rules)\n",
			args[0], len(lex.Events), len(lex.Assets), len(lex.Mechanisms), len(lex.Causal))
		return nil
	},
}

var lexiconShowCmd = &cobra.Command{
	Use:   "show [lexicon.yaml]",
	Short: "List the ids defined by a lexicon (built-in when no file given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		lex, err := loadLexicon(path)
		if err != nil {
			return err
		}
		fmt.Printf("version: %s\n\n", lex.Version)
		fmt.Println("events:")
		for _, id := range lex.EventIDs() {
			fmt.Printf("  %-24s %s\n", id, lex.Events[id].DisplayName)
		}
		fmt.Println("assets:")
		for _, id := range lex.AssetIDs() {
			fmt.Printf("  %-24s %s (%s)\n", id, lex.Assets[id].DisplayName, lex.Assets[id].Type)
		}
		fmt.Println("mechanisms:")
		for _, id := range lex.MechanismIDs() {
			fmt.Printf("  %-32s %s\n", id, lex.Mechanisms[id].Name)
		}
		return nil
	},
}

func init() {
	lexiconCmd.AddCommand(lexiconValidateCmd)
	lexiconCmd.AddCommand(lexiconShowCmd)
	rootCmd.AddCommand(lexiconCmd)
}
