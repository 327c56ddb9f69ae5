package build

// Message constants
const (
	MsgShort = "Compile a document on the remote build host"
	MsgLong  = `The 'build' command runs the full remote compilation pipeline:
  - Pushes the document's project folder to the build host with rsync
  - Runs the configured build command there over ssh
  - Pulls the build products back, leaving local sources untouched
  - Repairs the synctex mapping file so jump-to-source works locally

The build host comes from --server, the REMOTEX_SERVER environment
variable, or the configuration file, in that order. A failed remote
build stops the pipeline before anything is synced back.`

	MsgExample = `  # Compile notes.tex on the configured server
  remotex build ~/latex/topic/notes.tex

  # Compile on an explicit host
  remotex build --server angus-server.duckdns.org ~/latex/topic/notes.tex

  # Show the commands a run would execute
  remotex build --dry-run ~/latex/topic/notes.tex`
)
