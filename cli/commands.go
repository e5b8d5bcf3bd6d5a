// Package cli provides the Cobra-based CLI for genrs.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genrs/domain"
	"genrs/keygen"
	"genrs/uuidgen"
)

const version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:     "genrs",
	Short:   "Generates random keys and UUIDs in different formats or presets",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvlStr := strings.ToLower(viper.GetString("log-level"))
		lvl := slog.LevelInfo
		switch lvlStr {
		case "debug":
			lvl = slog.LevelDebug
		case "warn", "warning":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		}
		slog.SetDefault(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
		))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch mode := viper.GetString("mode"); mode {
		case "key":
			return runKey(cmd)
		case "uuid":
			return runUUID(cmd)
		default:
			return fmt.Errorf("unknown mode: %s (expected key or uuid)", mode)
		}
	},
}

func init() {
	rootCmd.Flags().StringP("mode", "m", "key", "mode: 'key' for key generation, 'uuid' for UUID generation")
	rootCmd.Flags().StringP("preset", "p", "", "key preset: "+strings.Join(keygen.Presets(), "|"))
	rootCmd.Flags().StringP("format", "f", "hex", "key encoding format: hex|base64")
	rootCmd.Flags().IntP("length", "l", 32, "key length in bytes, ignored when a preset is used")
	rootCmd.Flags().StringP("uuid-version", "u", "v4", "UUID version: v1|v3|v4|v5")
	rootCmd.Flags().StringP("namespace", "n", "", "namespace UUID for v3/v5")
	rootCmd.Flags().StringP("name", "N", "", "name for v3/v5")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("mode", rootCmd.Flags().Lookup("mode"))
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("length", rootCmd.Flags().Lookup("length"))
	viper.BindPFlag("uuid-version", rootCmd.Flags().Lookup("uuid-version"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func runKey(cmd *cobra.Command) error {
	format := domain.Format(viper.GetString("format"))
	if format != domain.FormatHex && format != domain.FormatBase64 {
		return fmt.Errorf("unknown format: %s (expected hex or base64)", format)
	}

	preset, _ := cmd.Flags().GetString("preset")
	req := domain.KeyRequest{
		Length: viper.GetInt("length"),
		Format: format,
		Preset: preset,
	}

	start := time.Now()
	out, err := keygen.Generate(req)
	if err != nil {
		slog.Error("key generation failed", "preset", preset, "error", err)
		return err
	}
	slog.Debug("key generated",
		"format", string(format),
		"preset", preset,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	fmt.Println(out)
	return nil
}

func runUUID(cmd *cobra.Command) error {
	req := domain.UUIDRequest{Version: viper.GetString("uuid-version")}
	// namespace and name count as present only when their flags were given
	if cmd.Flags().Changed("namespace") {
		ns, _ := cmd.Flags().GetString("namespace")
		req.Namespace = &ns
	}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}

	u, err := uuidgen.Generate(req)
	if err != nil {
		slog.Error("uuid generation failed", "version", req.Version, "error", err)
		return err
	}
	slog.Debug("uuid generated", "version", req.Version)
	fmt.Println(u.String())
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
