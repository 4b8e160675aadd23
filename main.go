/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "remap/cmd"

func main() {
	cmd.Execute()
}
