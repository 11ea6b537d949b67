package main

import (
	"fmt"
	"os"

	"mkg/internal/config"

	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long:  "Creates mkg.json in the current directory with the default extraction configuration",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing mkg.json")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	const path = "mkg.json"

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Println("mkg already initialized.")
		fmt.Printf("Configuration at: %s\n", path)
		fmt.Println("\nRun 'mkg init --force' to overwrite.")
		return nil
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	fmt.Printf("Wrote default configuration to %s\n", path)
	return nil
}
