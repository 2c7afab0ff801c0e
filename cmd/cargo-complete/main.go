// Command cargo-complete prints shell completion candidates for crate names,
// versions and features from the local crates.io index.
package main

import (
	"os"

	"github.com/git-pkgs/completions/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
