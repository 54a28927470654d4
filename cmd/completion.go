package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate a shell completion for vercompat",
	Long: `To load completions:

Bash:

$ source <(vercompat completion bash)

# To load completions for each session, execute once:
Linux:
  $ vercompat completion bash > /etc/bash_completion.d/vercompat
MacOS:
  $ vercompat completion bash > /usr/local/etc/bash_completion.d/vercompat

Zsh:

# If shell completion is not already enabled in your environment you will need
# to enable it.  You can execute the following once:

$ echo "autoload -U compinit; compinit" >> ~/.zshrc

# To load completions for each session, execute once:
$ vercompat completion zsh > "${fpath[1]}/_vercompat"

# You will need to start a new shell for this setup to take effect.

Fish:

$ vercompat completion fish | source

# To load completions for each session, execute once:
$ vercompat completion fish > ~/.config/fish/completions/vercompat.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		switch args[0] {
		case "bash":
			err = cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			err = cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			err = cmd.Root().GenFishCompletion(os.Stdout, true)
		}
		if err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
