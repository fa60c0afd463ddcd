package commands

import (
	"github.com/spf13/cobra"
)

// HashCmd prints the digest of the input.
func HashCmd(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	handler, err := newCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.Close()

	digest, err := handler.services.Hasher.Hash(data)
	if err != nil {
		return err
	}
	return writeOutput(cmd, []byte(digest))
}

// InitHashingCommands registers hashing commands
func InitHashingCommands(rootCmd *cobra.Command) {
	var hashCmd = &cobra.Command{
		Use:   "hash [data]",
		Short: "Hash data with the configured hashing driver",
		Args:  cobra.MaximumNArgs(1),
		RunE:  HashCmd,
	}
	addIOFlags(hashCmd)
	rootCmd.AddCommand(hashCmd)
}
