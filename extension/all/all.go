// Package all imports all built-in worthit extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each registers itself via init()
	_ "github.com/jpl-au/worthit/extension/assess"
	_ "github.com/jpl-au/worthit/extension/core"
	_ "github.com/jpl-au/worthit/extension/phrase"
)
