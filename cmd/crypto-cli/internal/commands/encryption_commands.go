package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-services/internal/infrastructure/encoder"

	"github.com/spf13/cobra"
)

// EncryptCmd encrypts the input. With --serialize the input is a JSON value passed through the configured encoder.
func EncryptCmd(cmd *cobra.Command, args []string) error {
	serialize, err := cmd.Flags().GetBool("serialize")
	if err != nil {
		return fmt.Errorf("invalid serialize flag: %w", err)
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	handler, err := newCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.Close()

	var value any = input
	if serialize {
		jsonEncoder, err := encoder.New(cryptoalg.EncoderJSON)
		if err != nil {
			return err
		}
		if err := jsonEncoder.Decode(input, &value); err != nil {
			return fmt.Errorf("input is not a JSON value: %w", err)
		}
	}

	ciphertext, err := handler.services.Encryptor.Encrypt(value, serialize)
	if err != nil {
		return err
	}

	return writeOutput(cmd, []byte(ciphertext))
}

// DecryptCmd decrypts the input. With --serialize the plaintext is decoded and printed as JSON.
func DecryptCmd(cmd *cobra.Command, args []string) error {
	serialize, err := cmd.Flags().GetBool("serialize")
	if err != nil {
		return fmt.Errorf("invalid serialize flag: %w", err)
	}

	payload, err := trimmedInput(cmd, args)
	if err != nil {
		return err
	}

	handler, err := newCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.Close()

	if !serialize {
		plaintext, err := handler.services.Encryptor.DecryptString(payload)
		if err != nil {
			return err
		}
		return writeOutput(cmd, []byte(plaintext))
	}

	value, err := handler.services.Encryptor.Decrypt(payload, true)
	if err != nil {
		return err
	}

	jsonEncoder, err := encoder.New(cryptoalg.EncoderJSON)
	if err != nil {
		return err
	}
	out, err := jsonEncoder.Encode(value)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

// InitEncryptionCommands registers encryption commands
func InitEncryptionCommands(rootCmd *cobra.Command) {
	var encryptCmd = &cobra.Command{
		Use:   "encrypt [plaintext]",
		Short: "Encrypt a value with the configured cipher",
		Args:  cobra.MaximumNArgs(1),
		RunE:  EncryptCmd,
	}
	encryptCmd.Flags().Bool("serialize", false, "Treat the input as a JSON value and serialize it with the configured encoder")
	addIOFlags(encryptCmd)
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a value produced by encrypt",
		Args:  cobra.MaximumNArgs(1),
		RunE:  DecryptCmd,
	}
	decryptCmd.Flags().Bool("serialize", false, "Decode the plaintext with the configured encoder and print it as JSON")
	addIOFlags(decryptCmd)
	rootCmd.AddCommand(decryptCmd)
}
