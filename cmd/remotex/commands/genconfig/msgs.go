package genconfig

// Message constants
const (
	MsgShort = "Print the default configuration as TOML"
	MsgLong  = `The 'genconfig' command renders remotex's default configuration. By
default the TOML goes to stdout; with --write it is saved to the user
config path instead. An existing config file is never overwritten.`

	MsgExample = `  # Inspect the defaults
  remotex genconfig

  # Create the config file to edit
  remotex genconfig --write`

	MsgWrittenFormat = "Wrote configuration to %s\n"
	MsgExistsFormat  = "Configuration already exists at %s, not overwriting\n"
)
