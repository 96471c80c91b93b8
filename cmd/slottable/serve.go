package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pthm/slottable"
	slottableecho "github.com/pthm/slottable/adapters/echo"
	"github.com/pthm/slottable/lib/definition"
)

const shutdownGracePeriod = 5 * time.Second

type serveParams struct {
	addr string
	key  string
}

func newServeCommand(logger *logrus.Logger) *cobra.Command {
	params := serveParams{}

	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve a table definition with click notifications",
		Long: `Serve a table definition as an interactive page.

Row, header and cell clicks are posted back to the server, logged, and
answered with a toast. Prometheus metrics are exposed on /metrics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := definition.Load(args[0])
			if err != nil {
				return err
			}
			e := newServer(def, tableName(args[0]), params, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, e, params.addr, logger)
		},
	}

	cmd.Flags().StringVarP(&params.addr, "addr", "a", ":8080", "set listening address of the server")
	cmd.Flags().StringVar(&params.key, "key", "", "set the key used to sign click payloads (random when empty)")
	return cmd
}

// newServer builds the echo instance serving def at "/".
func newServer(def *definition.Definition, name string, params serveParams, logger *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(requestLogger(logger))

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())

	opts := []slottableecho.Option{
		slottableecho.WithRegistryOptions(
			slottable.WithMetrics(promReg),
			slottable.WithLogger(logger),
		),
	}
	if params.key != "" {
		opts = append(opts, slottableecho.WithKey([]byte(params.key)))
	}
	reg := slottableecho.Mount(e, opts...)

	table := newDemoTable(name, def, logger)
	reg.Add(table)

	title := def.Caption
	if title == "" {
		title = name
	}
	e.GET("/", func(c echo.Context) error {
		props := def.Props()
		return slottableecho.Render(c, page(title, table.Render(c.Request().Context(), props)))
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))
	return e
}

// newDemoTable answers every click with a toast naming what was clicked.
func newDemoTable(name string, def *definition.Definition, logger logrus.FieldLogger) *slottable.Table[definition.Row] {
	visible := def.Model().Visible()

	table := slottable.New[definition.Row](name).
		Rows(func(ctx context.Context) ([]definition.Row, error) {
			return def.Rows, nil
		})
	if key := def.Options().RowKey; key != nil {
		table.RowKey(key)
	}
	return table.
		OnHeaderClick(func(ctx context.Context, e slottable.HeaderClick) slottable.Reply {
			logger.WithField("column", e.ColumnIndex).Info("header clicked")
			return slottable.OK().Flash(slottable.FlashInfo, fmt.Sprintf("Header %d clicked", e.ColumnIndex))
		}).
		OnCellClick(func(ctx context.Context, e slottable.CellClick[definition.Row]) slottable.Reply {
			logger.WithFields(logrus.Fields{"row": e.RowIndex, "column": e.ColumnIndex}).Info("cell clicked")
			return slottable.OK()
		}).
		OnRowClick(func(ctx context.Context, e slottable.RowClick[definition.Row]) slottable.Reply {
			logger.WithField("row", e.RowIndex).Info("row clicked")
			return slottable.OK().Flash(slottable.FlashInfo, rowSummary(e.RowIndex, e.Row, visible, def.Columns))
		})
}

// rowSummary describes a clicked row by its first visible field value.
func rowSummary(index int, row definition.Row, visible []slottable.ColumnDef[definition.Row], columns []definition.Column) string {
	if len(visible) > 0 {
		if field := columns[visible[0].Position].Field; field != "" {
			if v, ok := row[field]; ok {
				return fmt.Sprintf("Row %d clicked: %v", index, v)
			}
		}
	}
	return fmt.Sprintf("Row %d clicked", index)
}

func tableName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" {
		return "table"
	}
	return name
}

func run(ctx context.Context, e *echo.Echo, addr string, logger logrus.FieldLogger) error {
	errc := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("server started")
		errc <- e.Start(addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request through logger.
func requestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			logger.WithFields(logrus.Fields{
				"method":   req.Method,
				"path":     req.URL.Path,
				"status":   c.Response().Status,
				"duration": time.Since(start).String(),
				"htmx":     slottable.IsHTMX(req),
			}).Debug("request")
			return nil
		}
	}
}
