// flags.go defines constants for all CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "max-backups" -> FlagMaxBackups).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagHTTP   = "http"   // Serve HTTP instead of MCP
	FlagLocal  = "local"  // Use local scope (.worthit/config.yaml)
	FlagReport = "report" // Render a markdown report

	// String flags

	FlagAddr     = "addr"     // HTTP listen address
	FlagAutomate = "automate" // Time needed to automate the task
	FlagEvery    = "every"    // How often the task recurs
	FlagSaved    = "saved"    // Time saved each run once automated
	FlagSpent    = "spent"    // Time the task takes each run
	FlagUnit     = "unit"     // Output unit

	// Integer flags

	FlagLimit   = "limit"   // Limit number of results
	FlagWorkers = "workers" // Concurrent batch workers
)
