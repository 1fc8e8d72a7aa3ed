package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// writeCompletion prints the completion script for shell.
func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch strings.ToLower(shell) {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q. Expected bash, zsh, fish or powershell", shell)
	}
}
