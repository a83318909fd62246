// clientes consulta y exporta la tabla de clientes del programa de fidelización.
//
//	clientes listar [--tipo ID] [--numero N]
//	clientes tipos
//	clientes exportar [--tipo ID] [--numero N] [--formato csv|xlsx|txt] [--dir DIR]
//	clientes tui
//
// La configuración base sale de variables de entorno / .env (API_BASE_URL, EXPORT_DIR,
// LOG_LEVEL...); los flags la sobrescriben.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/tabla-fidelizacion/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, app *appContext, args []string) error
}

var commands = []command{
	{"listar", "Lista clientes (filtros opcionales)", runList},
	{"tipos", "Lista los tipos de documento", runTypes},
	{"exportar", "Descarga la exportación en csv, xlsx o txt", runExport},
	{"tui", "Tabla interactiva", runTUI},
}

func run(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(stdout)
		return nil
	}
	for _, c := range commands {
		if c.name == args[0] {
			app := newAppContext(cfg, stdout)
			defer app.close()
			return c.run(ctx, app, args[1:])
		}
	}
	printUsage(stdout)
	return fmt.Errorf("comando desconocido %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "uso: clientes <comando> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
}
