package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/crypto-services/internal/app"
	"github.com/MGTheTrain/crypto-services/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-services/internal/infrastructure/telemetry"
	"github.com/MGTheTrain/crypto-services/internal/pkg/config"
	"github.com/MGTheTrain/crypto-services/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	flagConfig     = "config"
	flagLogLevel   = "log-level"
	flagInputFile  = "input-file"
	flagOutputFile = "output-file"
)

// NewRootCommand builds the crypto-cli command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "crypto-cli",
		Short: "Cryptographic services CLI tool",
		Long: `crypto-cli is a command-line tool for the crypto services.
Supports key generation, authenticated encryption/decryption, signing, verification and hashing.

Key material is read from the configuration file (--config or CONFIG_PATH) and the environment:
- CRYPTO_KEYS_APP, CRYPTO_KEYS_HASHING, CRYPTO_KEYS_HMAC: "base64:<key>" or "file:<path>"
- CRYPTO_SIGNING_KEYS_EDDSA: path of the EdDSA key pair file`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagConfig, os.Getenv("CONFIG_PATH"), "Path to the configuration file")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "Log level overriding logger.log_level (debug, info, warning, error, critical)")

	InitKeyCommands(rootCmd)
	InitEncryptionCommands(rootCmd)
	InitSigningCommands(rootCmd)
	InitHashingCommands(rootCmd)

	return rootCmd
}

// CommandHandler holds the services a single command invocation works with.
type CommandHandler struct {
	services *app.CryptoServices
	logger   logger.Logger
}

// newCommandHandler loads the configuration named by the persistent flags and builds the crypto services.
func newCommandHandler(cmd *cobra.Command) (*CommandHandler, error) {
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagConfig, err)
	}
	logLevel, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagLogLevel, err)
	}

	cfg, provider, err := config.InitializeConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed(flagLogLevel) {
		cfg.Logger.LogLevel = logLevel
	}

	loggerInstance, err := setupLogger(cmd, &cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	recorder, err := telemetry.NewRecorder(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to setup metrics: %w", err)
	}

	services, err := app.NewCryptoServices(&cfg.Crypto, provider, loggerInstance, cryptography.WithMetrics(recorder))
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto services: %w", err)
	}

	return &CommandHandler{
		services: services,
		logger:   loggerInstance,
	}, nil
}

// Close wipes the cached keys.
func (h *CommandHandler) Close() {
	h.services.Close()
}

// setupLogger binds console logs to the command's streams, stderr by default so output stays pipeable.
func setupLogger(cmd *cobra.Command, settings *config.LoggerSettings) (logger.Logger, error) {
	if settings.LogType != config.LogTypeConsole {
		if err := logger.InitLogger(settings); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		return logger.GetLogger()
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.Output == config.LogOutputStdout {
		return logger.NewTextLogger(cmd.OutOrStdout(), settings.LogLevel), nil
	}
	return logger.NewTextLogger(cmd.ErrOrStderr(), settings.LogLevel), nil
}

// readInput returns the content of --input-file, or the first positional argument.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	inputFilePath, err := cmd.Flags().GetString(flagInputFile)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagInputFile, err)
	}

	switch {
	case inputFilePath != "":
		data, err := os.ReadFile(filepath.Clean(inputFilePath))
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil
	case len(args) > 0:
		return []byte(args[0]), nil
	default:
		return nil, fmt.Errorf("no input: pass an argument or --%s", flagInputFile)
	}
}

// writeOutput writes result to --output-file, or prints it on stdout.
func writeOutput(cmd *cobra.Command, result []byte) error {
	outputFilePath, err := cmd.Flags().GetString(flagOutputFile)
	if err != nil {
		return fmt.Errorf("invalid %s flag: %w", flagOutputFile, err)
	}

	if outputFilePath == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(result))
		return err
	}
	if err := os.WriteFile(outputFilePath, result, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func addIOFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagInputFile, "", "Path to the input file (default: first argument)")
	cmd.Flags().String(flagOutputFile, "", "Path to the output file (default: stdout)")
}

// trimmedInput is readInput with surrounding whitespace removed, for text payloads.
func trimmedInput(cmd *cobra.Command, args []string) (string, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
