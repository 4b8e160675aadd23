/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"remap/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of remap",
	Long:  `Displays the version of remap.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("remap %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
