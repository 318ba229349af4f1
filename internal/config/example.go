package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# projman configuration file
# Values here can be overridden by CLI flags

# Data file (relative to the working directory, supports ~ expansion)
data_file = "data.json"

# Exit with status 3 when a user, project or task is not found
strict = false

# Logging (diagnostics go to stderr)
log_level = "warn"      # debug, info, warn, error
log_format = "text"     # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
