package cli

const (
	// Command descriptions
	MsgRootShort = "Keep Cargo.lock files canonical"
	MsgRootLong  = `cargolock reads and rewrites Cargo.lock files in their canonical layout,
so that regenerating a lockfile only changes the lines of the packages
that actually changed.`
	MsgFmtShort     = "Rewrite the lockfile in canonical form"
	MsgCheckShort   = "Fail if the lockfile is not in canonical form"
	MsgShowShort    = "Print the locked dependency graph as YAML"
	MsgVersionShort = "Print version information"

	// Flags
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir     = "Project directory holding the lockfile"
	MsgFlagSource  = "Source id of the root package (default: path+file://<dir>)"

	// Output
	MsgFormatted        = "Formatted %s\n"
	MsgAlreadyFormatted = "%s is already canonical\n"
	MsgCanonical        = "%s is canonical\n"
	MsgVersionFormat    = "cargolock version %s\n"
	MsgCommitFormat     = "  commit: %s\n"
	MsgBuiltFormat      = "  built:  %s\n"
)
