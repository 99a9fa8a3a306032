// Command castgen generates the fixed-length array conversions of package
// cast. It is run through go generate from the cast directory.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"go.dw1.io/numcast/internal/config"
	"go.dw1.io/numcast/internal/gen"
	"go.dw1.io/numcast/internal/log"
)

var (
	loglevel   string = "info"
	logformat  string = "text"
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "castgen",
	Short: "generate fixed-length array conversions",
	Long: `castgen writes one ArrayN/ToArrayN pair per array length from 0 to
max-len, plus a test file exercising every length.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := log.SetupLogger(loglevel, logformat)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(configPath, cmd.Flags())
		if err != nil {
			return err
		}

		logger.Debug().
			Str("package", cfg.Package).
			Uint8("max_len", cfg.MaxLen).
			Msg("loaded config")

		return gen.New(*cfg, logger).Run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&loglevel, "loglevel", "v", loglevel, "Log level: trace,debug,info,error")
	rootCmd.Flags().StringVarP(&logformat, "logformat", "o", logformat, "Log format: json,pretty,text")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default .castgen.yaml if present)")
	rootCmd.Flags().Uint8(config.KeyMaxLen, config.DefaultMaxLen, "largest array length to generate")
	rootCmd.Flags().String(config.KeyPackage, config.DefaultPackage, "package name of the generated files")
	rootCmd.Flags().String(config.KeyOut, config.DefaultOut, "generated source file")
	rootCmd.Flags().String(config.KeyTestOut, config.DefaultTestOut, "generated test file, empty to skip")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
