package docs

// Message constants
const (
	MsgShort = "Show the remotex manual"
	MsgLong  = `Display the full remotex manual, covering the build pipeline, the
configuration keys, and how the synctex repair works.`
)
