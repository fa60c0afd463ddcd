package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/app"

	"github.com/spf13/cobra"
)

// GenerateKeysCmd prints a fresh key, or persists it with --write.
func GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keyType, err := cmd.Flags().GetString("type")
	if err != nil {
		return fmt.Errorf("invalid type flag: %w", err)
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("invalid write flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}

	kind, err := app.ParseKeyKind(keyType)
	if err != nil {
		return err
	}

	handler, err := newCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.Close()

	generator, err := handler.services.Generator(kind)
	if err != nil {
		return err
	}

	if !write {
		key, err := generator.Generate()
		if err != nil {
			return err
		}
		if kind != app.KeyKindEdDSA {
			key = "base64:" + key
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
		return err
	}

	path := output
	if path == "" {
		if path, err = handler.services.KeyFilePath(kind); err != nil {
			return fmt.Errorf("no --output given and no key file configured: %w", err)
		}
	}
	if err := generator.GenerateTo(path); err != nil {
		return err
	}

	handler.logger.Info("Key ", kind, " saved to ", path)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

// InitKeyCommands registers key generation commands
func InitKeyCommands(rootCmd *cobra.Command) {
	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate app, hashing, hmac or eddsa keys",
		Args:  cobra.NoArgs,
		RunE:  GenerateKeysCmd,
	}
	generateKeysCmd.Flags().String("type", string(app.KeyKindApp), "Key type (app, hashing, hmac, eddsa)")
	generateKeysCmd.Flags().Bool("write", false, "Persist the key under an exclusive file lock instead of printing it")
	generateKeysCmd.Flags().String("output", "", "Key file path (default: the configured key file)")
	rootCmd.AddCommand(generateKeysCmd)
}
