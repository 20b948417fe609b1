package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fabzclean/pos/internal/common/constants"
	"github.com/fabzclean/pos/internal/log"
	poscmd "github.com/fabzclean/pos/pos/cmd"
)

func Start() {
	logger := log.InitLogger("/var/log/fabzclean-pos.log").
		With().
		Str(log.KeyAppName, constants.AppMainPos).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "pos",
		Short: "Run pos service",
		Run: func(cmd *cobra.Command, args []string) {
			poscmd.RunPosService(cmd.Context())
		},
	})
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
