package cli

// Short messages (one-liners)
const (
	MsgRootShort       = "Generate the human readable list of supported smart-card readers"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgGenConfigShort  = "Print the effective readerlist settings as TOML"
	MsgManShort        = "Generate man pages"

	MsgRootLong = `readerlist reads the CCID supported readers config, keeps the readers
listed in the accepted sections ("supported" and "shouldwork" by default),
removes duplicate names and writes them sorted, one per line, to the target
file.

The target file is only written when the whole config parsed successfully.`
)

// Flag names
const (
	FlagConfigPath    = "ccid-supported-readers-config-path"
	FlagTargetPath    = "target-file-path"
	FlagSettings      = "config"
	FlagSummaryFormat = "summary-format"
	FlagVerbose       = "verbose"
)
