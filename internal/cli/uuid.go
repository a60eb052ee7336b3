package cli

import (
	"fmt"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/identifier"
	"github.com/spf13/cobra"
)

var uuidCount int

func init() {
	uuidCmd.Flags().IntVarP(&uuidCount, "count", "n", 1, "Number of random UUIDs to print")
	rootCmd.AddCommand(uuidCmd)
}

var uuidCmd = &cobra.Command{
	Use:   "uuid [name [namespace]]",
	Short: "Print UUIDs for manifests",
	Long: `Without arguments, print random UUIDs. With a name, print the
deterministic UUID for that name, optionally within a namespace.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch len(args) {
		case 0:
			for i := 0; i < uuidCount; i++ {
				fmt.Fprintln(out, identifier.NewUUID())
			}
		case 1:
			fmt.Fprintln(out, identifier.NameUUID(args[0], ""))
		default:
			fmt.Fprintln(out, identifier.NameUUID(args[0], args[1]))
		}
		return nil
	},
}
