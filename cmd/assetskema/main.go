package main

import "github.com/reoring/assetskema/internal/cli"

func main() {
	cli.Execute()
}
