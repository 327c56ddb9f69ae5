package commands

// Message constants
const (
	MsgRootShort = "Compile LaTeX documents on a remote build host"
	MsgRootLong  = `remotex compiles a LaTeX document on a remote machine instead of your
laptop. It pushes the project folder to the build host with rsync, runs
the build command there over ssh, pulls the results back, and repairs
the synctex mapping file so jump-to-source keeps working locally.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = `Generate man pages for remotex and all its subcommands.`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(remotex completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ remotex completion bash > /etc/bash_completion.d/remotex
  # macOS:
  $ remotex completion bash > /usr/local/etc/bash_completion.d/remotex

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ remotex completion zsh > "${fpath[1]}/_remotex"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ remotex completion fish | source
  # To load completions for each session, execute once:
  $ remotex completion fish > ~/.config/fish/completions/remotex.fish

PowerShell:
  PS> remotex completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> remotex completion powershell > remotex.ps1
  # and source this file from your PowerShell profile.
`

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview the run without executing any commands"
	MsgFlagFormat  = "Output format: auto, term, or text"
)
