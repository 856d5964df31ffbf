package cli

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/neolcr/patterns/internal/infra/httpapi"
	"github.com/neolcr/patterns/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(opts *globalOpts) *cobra.Command {
	var addr string
	var store string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the account and demo HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			repo, err := a.accountRepo(ctx, store)
			if err != nil {
				return err
			}

			app := httpapi.New(httpapi.Deps{
				CreateAccount: usecase.NewCreateAccount(repo, a.log),
				Deposit:       usecase.NewDeposit(repo, a.log),
				GetAccount:    usecase.NewGetAccount(repo),
				ListDemos:     usecase.NewListDemos(a.catalog),
				RunDemo:       a.runDemo(a.cfg.Reports.Enabled),
				Log:           a.log,
			})

			listenAddr := a.cfg.Server.Addr
			if strings.TrimSpace(addr) != "" {
				listenAddr = addr
			}

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("server.starting", "addr", listenAddr)
				errCh <- app.Listen(listenAddr)
			}()
			cmd.Printf("Listening on %s (ctrl+c to stop)\n", listenAddr)

			select {
			case err := <-errCh:
				a.log.Error("server.failed", "error", err)
				return err
			case <-ctx.Done():
			}

			a.log.Info("server.stopping")
			if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
				a.log.Error("server.shutdown_failed", "error", err)
				return err
			}
			a.log.Info("server.stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr from config)")
	cmd.Flags().StringVar(&store, "store", "", "Account store: memory|redis (defaults to config)")
	return cmd
}
