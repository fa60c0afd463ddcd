package commands

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-services/internal/domain/crypto"

	"github.com/spf13/cobra"
)

// ErrInvalidSignature is returned by verify when the signature does not match.
var ErrInvalidSignature = errors.New("signature is invalid")

func selectSigner(cmd *cobra.Command, handler *CommandHandler) (crypto.Signer, error) {
	eddsa, err := cmd.Flags().GetBool("eddsa")
	if err != nil {
		return nil, fmt.Errorf("invalid eddsa flag: %w", err)
	}
	if eddsa {
		return handler.services.PublicKeySigner, nil
	}
	return handler.services.Signer, nil
}

// SignCmd prints the signature of the input.
func SignCmd(cmd *cobra.Command, args []string) error {
	message, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	handler, err := newCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.Close()

	signer, err := selectSigner(cmd, handler)
	if err != nil {
		return err
	}

	signature, err := signer.Sign(message)
	if err != nil {
		return err
	}
	return writeOutput(cmd, []byte(signature))
}

// VerifyCmd checks the --signature of the input.
func VerifyCmd(cmd *cobra.Command, args []string) error {
	signature, err := cmd.Flags().GetString("signature")
	if err != nil {
		return fmt.Errorf("invalid signature flag: %w", err)
	}

	message, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	handler, err := newCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.Close()

	signer, err := selectSigner(cmd, handler)
	if err != nil {
		return err
	}

	valid, err := signer.Verify(message, signature)
	if err != nil {
		return err
	}
	if !valid {
		return ErrInvalidSignature
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return err
}

// InitSigningCommands registers signing commands
func InitSigningCommands(rootCmd *cobra.Command) {
	var signCmd = &cobra.Command{
		Use:   "sign [message]",
		Short: "Sign a message with the configured HMAC signer or EdDSA",
		Args:  cobra.MaximumNArgs(1),
		RunE:  SignCmd,
	}
	signCmd.Flags().Bool("eddsa", false, "Sign with the EdDSA key pair")
	addIOFlags(signCmd)
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify [message]",
		Short: "Verify a signature produced by sign",
		Args:  cobra.MaximumNArgs(1),
		RunE:  VerifyCmd,
	}
	verifyCmd.Flags().Bool("eddsa", false, "Verify with the EdDSA public key")
	verifyCmd.Flags().String("signature", "", "Signature to verify")
	verifyCmd.Flags().String(flagInputFile, "", "Path to the message file (default: first argument)")
	_ = verifyCmd.MarkFlagRequired("signature")
	rootCmd.AddCommand(verifyCmd)
}
