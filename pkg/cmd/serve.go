package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/config"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/server"
)

var ServeCmd = &cobra.Command{
	Use:   ServeCmdName,
	Short: ServeCmdShort,
	Long:  ServeCmdLong,
	Args:  cobra.NoArgs,
	RunE:  serveCmdFunc,
}

func init() {
	ServeCmd.Flags().String(config.KeyAddress, ":8080", "listen address")
	viper.BindPFlags(ServeCmd.Flags())
}

func serveCmdFunc(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.log.Sync()

	a.log.Info("started serve cmd", "address", a.cfg.Address, "cars", len(a.catalog.Cars))
	serve := server.NewHTTPServer(a.cfg.Address, a.catalog, a.metrics, a.log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- serve.ListenAndServe()
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt)
	defer signal.Stop(signalCh)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-signalCh:
		a.log.Info("shutting down the server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return serve.Shutdown(ctx)
}
