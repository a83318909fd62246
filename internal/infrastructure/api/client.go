package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/tabla-fidelizacion/internal/application/dto"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/pkg/logger"
)

// Rutas del backend de clientes.
const (
	PathCustomers     = "/api/clientes/"
	PathDocumentTypes = "/api/tipos-documento/"
	PathExport        = "/api/download/"
)

// Client accede al backend de clientes por HTTP. Sin reintentos.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout <= 0 deja el cliente sin límite
// (solo el contexto corta la petición).
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("api"),
	}
}

// ListCustomers GET /api/clientes/ con los filtros no vacíos.
func (c *Client) ListCustomers(ctx context.Context, filter entity.Filter) ([]entity.Customer, error) {
	var raw []dto.CustomerResponse
	if err := c.getJSON(ctx, ResolveURL(c.baseURL, PathCustomers, BuildQuery(filter)), &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Customer, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToEntity())
	}
	return out, nil
}

// ListDocumentTypes GET /api/tipos-documento/.
func (c *Client) ListDocumentTypes(ctx context.Context) ([]entity.DocumentType, error) {
	var raw []dto.DocumentTypeResponse
	if err := c.getJSON(ctx, ResolveURL(c.baseURL, PathDocumentTypes, nil), &raw); err != nil {
		return nil, err
	}
	out := make([]entity.DocumentType, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.ToEntity())
	}
	return out, nil
}

// Export GET /api/download/ y devuelve el payload con el nombre usuarios_export.<ext>.
func (c *Client) Export(ctx context.Context, filter entity.Filter, format entity.ExportFormat) (*entity.ExportFile, error) {
	q, err := BuildExportQuery(filter, format)
	if err != nil {
		return nil, err
	}
	data, err := c.getBytes(ctx, ResolveURL(c.baseURL, PathExport, q))
	if err != nil {
		return nil, err
	}
	return &entity.ExportFile{
		Name:   format.ExportFilename(),
		Format: format,
		Data:   data,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	body, err := c.do(ctx, rawURL, "application/json")
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	return nil
}

func (c *Client) getBytes(ctx context.Context, rawURL string) ([]byte, error) {
	body, err := c.do(ctx, rawURL, "*/*")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer cuerpo: %v", domain.ErrTransport, err)
	}
	return data, nil
}

// do ejecuta el GET y devuelve el cuerpo solo si el status es 2xx.
func (c *Client) do(ctx context.Context, rawURL, accept string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Accept", accept)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("url", rawURL).Msg("petición fallida")
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	c.log.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("GET")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drenar para reutilizar la conexión
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()
		return nil, newHTTPError(resp, rawURL)
	}
	return resp.Body, nil
}
