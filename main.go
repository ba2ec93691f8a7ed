package main

import "github.com/research-data-tools/depositcsv/cmd"

func main() {
	cmd.Execute()
}
