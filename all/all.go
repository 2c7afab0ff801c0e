// Package all imports all supported index implementations.
//
// Import this package for its side effects to register all ecosystems:
//
//	import (
//		"github.com/git-pkgs/completions"
//		_ "github.com/git-pkgs/completions/all"
//	)
//
//	// Now all ecosystems are available
//	ecosystems := completions.SupportedEcosystems()
//	// ["cargo"]
package all

import (
	_ "github.com/git-pkgs/completions/internal/cargo"
)
