package main

import "github.com/kalij01/ecobank-report-codes/cmd"

func main() {
	cmd.Execute()
}
