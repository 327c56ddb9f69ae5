package synctex

// Message constants
const (
	MsgShort = "Repair a synctex mapping file after a remote build"
	MsgLong  = `A synctex mapping file produced on the build host embeds the remote
staging paths, so jump-to-source points at directories that do not exist
on this machine. The 'synctex' command rewrites those paths in place:
every occurrence of the remote root is replaced with the local folder
and each line is normalized as a path.

The build command runs this repair automatically. Use this command when
a repair failed, or for a mapping file obtained some other way.`

	MsgExample = `  # Repair using the configured remote root
  remotex synctex ~/latex/topic/notes.synctex.gz

  # Repair with explicit locations
  remotex synctex --local ~/latex --remote-root /tmp ~/latex/topic/notes.synctex.gz`
)
