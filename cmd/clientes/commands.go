package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/docker/go-units"
	"github.com/spf13/pflag"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/clientes"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/internal/infrastructure/api"
	"github.com/jhoicas/tabla-fidelizacion/internal/infrastructure/filesaver"
	"github.com/jhoicas/tabla-fidelizacion/internal/interfaces/render"
	"github.com/jhoicas/tabla-fidelizacion/internal/interfaces/tui"
	"github.com/jhoicas/tabla-fidelizacion/pkg/config"
	"github.com/jhoicas/tabla-fidelizacion/pkg/logger"
)

// appContext dependencias compartidas por los subcomandos.
type appContext struct {
	cfg     *config.Config
	stdout  io.Writer
	log     *logger.Logger
	logFile *os.File
}

func newAppContext(cfg *config.Config, stdout io.Writer) *appContext {
	app := &appContext{cfg: cfg, stdout: stdout}
	out := io.Writer(os.Stderr)
	if cfg.App.LogFile != "" {
		if f, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			app.logFile = f
			out = f
		}
	}
	app.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: out})
	return app
}

func (a *appContext) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func (a *appContext) controller() *clientes.Controller {
	client := api.NewClient(a.cfg.API.BaseURL, a.cfg.API.Timeout, a.log)
	return clientes.NewController(client, filesaver.NewDirSaver(a.cfg.Export.Dir), a.log)
}

// filterFlags flags comunes de filtro.
type filterFlags struct {
	docType string
	number  string
	apiURL  string
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.docType, "tipo", "", "id del tipo de documento")
	fs.StringVar(&f.number, "numero", "", "número de documento (subcadena)")
	fs.StringVar(&f.apiURL, "api", "", "URL base del backend (por defecto API_BASE_URL)")
}

func (f *filterFlags) apply(ctrl *clientes.Controller) {
	ctrl.SetDocumentType(f.docType)
	ctrl.SetDocumentNumber(f.number)
}

func (f *filterFlags) overrideAPI(a *appContext) {
	if f.apiURL != "" {
		a.cfg.API.BaseURL = f.apiURL
	}
}

func runList(ctx context.Context, a *appContext, args []string) error {
	var ff filterFlags
	fs := pflag.NewFlagSet("listar", pflag.ContinueOnError)
	ff.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	ff.overrideAPI(a)

	ctrl := a.controller()
	ff.apply(ctrl)
	err := ctrl.Search(ctx)
	fmt.Fprintln(a.stdout, render.View(ctrl.State()))
	return err
}

func runTypes(ctx context.Context, a *appContext, args []string) error {
	var apiURL string
	fs := pflag.NewFlagSet("tipos", pflag.ContinueOnError)
	fs.StringVar(&apiURL, "api", "", "URL base del backend (por defecto API_BASE_URL)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if apiURL != "" {
		a.cfg.API.BaseURL = apiURL
	}

	// A diferencia de la tabla, aquí un fallo sí es un error del comando.
	types, err := api.NewClient(a.cfg.API.BaseURL, a.cfg.API.Timeout, a.log).ListDocumentTypes(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE")
	for _, t := range types {
		fmt.Fprintf(w, "%s\t%s\n", t.ID, t.Name)
	}
	return w.Flush()
}

func runExport(ctx context.Context, a *appContext, args []string) error {
	var (
		ff     filterFlags
		format string
		dir    string
	)
	fs := pflag.NewFlagSet("exportar", pflag.ContinueOnError)
	ff.register(fs)
	fs.StringVar(&format, "formato", string(entity.FormatCSV), "csv, xlsx o txt")
	fs.StringVar(&dir, "dir", "", "directorio destino (por defecto EXPORT_DIR)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ff.overrideAPI(a)
	if dir != "" {
		a.cfg.Export.Dir = dir
	}
	f, err := entity.ParseExportFormat(format)
	if err != nil {
		return fmt.Errorf("%w: %q", err, format)
	}

	ctrl := a.controller()
	ff.apply(ctrl)
	if err := ctrl.SetFormat(f); err != nil {
		return err
	}
	path, err := ctrl.Export(ctx)
	if err != nil {
		return fmt.Errorf("no se pudo exportar el archivo: %w", err)
	}
	size := "?"
	if st, err := os.Stat(path); err == nil {
		size = units.HumanSize(float64(st.Size()))
	}
	fmt.Fprintf(a.stdout, "Archivo guardado en %s (%s)\n", path, size)
	return nil
}

func runTUI(ctx context.Context, a *appContext, args []string) error {
	var apiURL, dir string
	fs := pflag.NewFlagSet("tui", pflag.ContinueOnError)
	fs.StringVar(&apiURL, "api", "", "URL base del backend (por defecto API_BASE_URL)")
	fs.StringVar(&dir, "dir", "", "directorio destino de exportaciones (por defecto EXPORT_DIR)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if apiURL != "" {
		a.cfg.API.BaseURL = apiURL
	}
	if dir != "" {
		a.cfg.Export.Dir = dir
	}
	if a.logFile == nil {
		// Los logs en stderr romperían la pantalla de la TUI.
		a.log = logger.Nop()
	}

	model := tui.NewModel(ctx, a.controller())
	defer model.Close()

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
