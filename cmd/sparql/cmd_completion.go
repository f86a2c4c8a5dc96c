/*
# Module: cmd/sparql/cmd_completion.go
Shell completion generation command.

Generates shell completion scripts for Bash, Zsh, Fish, and PowerShell.

## Linked Modules
- [root](./root.go) - Root command

## Tags
cli, completion, shells

## Exports
completionCmd

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

<#cmd_completion.go> a code:Module ;
    code:name "cmd/sparql/cmd_completion.go" ;
    code:description "Shell completion generation command" ;
    code:language "go" ;
    code:layer "cli" ;
    code:linksTo <./root.go> ;
    code:exports <#completionCmd> ;
    code:tags "cli", "completion", "shells" .
<!-- End LinkedDoc RDF -->
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for mini-sparql.

IMPORTANT: Use the completion script that matches your shell!
- Check your shell: echo $SHELL
- Zsh users: use 'sparql completion zsh' (not bash)
- Bash users: use 'sparql completion bash'
- Fish users: use 'sparql completion fish'

To load completions:

Bash:
  $ source <(sparql completion bash)

  # Add to ~/.bashrc for persistence:
  $ sparql completion bash > ~/.sparql-completion.bash
  $ echo "source ~/.sparql-completion.bash" >> ~/.bashrc

Zsh:
  $ source <(sparql completion zsh)

  # Add to ~/.zshrc for persistence:
  $ mkdir -p ~/.zsh/completion
  $ sparql completion zsh > ~/.zsh/completion/_sparql
  $ echo 'fpath=(~/.zsh/completion $fpath)' >> ~/.zshrc
  $ echo 'autoload -Uz compinit && compinit' >> ~/.zshrc

Fish:
  $ sparql completion fish | source

  # Add to ~/.config/fish/completions/ for persistence:
  $ mkdir -p ~/.config/fish/completions
  $ sparql completion fish > ~/.config/fish/completions/sparql.fish

PowerShell:
  PS> sparql completion powershell | Out-String | Invoke-Expression

Examples:
  # Generate bash completions
  sparql completion bash

  # Install completions for current shell
  source <(sparql completion bash)  # Bash
  source <(sparql completion zsh)   # Zsh
  sparql completion fish | source   # Fish
`,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	RunE:                  runCompletion,
}

func runCompletion(cmd *cobra.Command, args []string) error {
	shell := args[0]

	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletionV2(os.Stdout, true)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish, powershell)", shell)
	}
}
