/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/pfid/cmd/pfid/cmd"

func main() {
	cmd.Execute()
}
