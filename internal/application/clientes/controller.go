package clientes

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/tabla-fidelizacion/internal/domain"
	"github.com/jhoicas/tabla-fidelizacion/internal/domain/entity"
	"github.com/jhoicas/tabla-fidelizacion/pkg/logger"
)

// Controller dueño único del estado de la tabla de clientes. Las operaciones de red
// bloquean hasta completarse; la UI las lanza en goroutines y observa el estado vía Subscribe.
type Controller struct {
	api   CustomerAPI
	saver FileSaver
	log   *logger.Logger

	mu    sync.Mutex
	state State
	seq   uint64
	subs  map[int]chan State
	next  int
}

// NewController construye el controlador con estado inicial idle y formato csv.
func NewController(api CustomerAPI, saver FileSaver, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		api:   api,
		saver: saver,
		log:   log.Named("clientes"),
		state: initialState(),
		subs:  make(map[int]chan State),
	}
}

// State devuelve una copia del estado actual.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Subscribe devuelve un canal que siempre contiene el estado más reciente
// (los intermedios pueden perderse) y la función para cancelar la suscripción.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.next
	c.next++
	ch := make(chan State, 1)
	ch <- c.state.clone()
	c.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
}

// setLocked aplica el nuevo estado y notifica. Requiere c.mu tomado.
func (c *Controller) setLocked(s State) {
	c.state = s
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s.clone()
	}
}

// SetDocumentType cambia el tipo de documento seleccionado ("" = sin filtro).
func (c *Controller) SetDocumentType(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Filter.DocumentTypeID = id
	c.setLocked(s)
}

// SetDocumentNumber cambia el texto del número de documento ("" = sin filtro).
func (c *Controller) SetDocumentNumber(number string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Filter.DocumentNumber = number
	c.setLocked(s)
}

// SetFormat cambia el formato de exportación. Formatos desconocidos se rechazan.
func (c *Controller) SetFormat(f entity.ExportFormat) error {
	if !f.Valid() {
		return domain.ErrInvalidFormat
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Format = f
	c.setLocked(s)
	return nil
}

// Load carga la lista sin parámetros (montaje inicial).
func (c *Controller) Load(ctx context.Context) error {
	return c.fetch(ctx, entity.Filter{})
}

// Search vuelve a consultar el backend con el filtro actual.
func (c *Controller) Search(ctx context.Context) error {
	c.mu.Lock()
	filter := c.state.Filter
	c.mu.Unlock()
	return c.fetch(ctx, filter)
}

// Clear limpia los filtros y vuelve a consultar sin parámetros.
func (c *Controller) Clear(ctx context.Context) error {
	c.mu.Lock()
	s := c.state
	s.Filter = entity.Filter{}
	c.setLocked(s)
	c.mu.Unlock()
	return c.fetch(ctx, entity.Filter{})
}

// fetch emite una carga con número de secuencia; solo la última emitida
// puede modificar el estado visible.
func (c *Controller) fetch(ctx context.Context, filter entity.Filter) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.setLocked(startLoading(c.state, seq))
	c.mu.Unlock()

	rows, err := c.api.ListCustomers(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	var (
		next    State
		applied bool
	)
	if err != nil {
		c.log.Error().Err(err).Uint64("seq", seq).Msg("no se pudieron cargar los clientes")
		next, applied = loadFailed(c.state, seq, err)
	} else {
		next, applied = loadSucceeded(c.state, seq, rows)
	}
	if !applied {
		c.log.Debug().Uint64("seq", seq).Uint64("latest", c.state.Seq).Msg("respuesta obsoleta descartada")
		return err
	}
	c.setLocked(next)
	return err
}

// LoadDocumentTypes carga los tipos de documento. Un error no es fatal:
// se registra y la lista queda vacía.
func (c *Controller) LoadDocumentTypes(ctx context.Context) {
	types, err := c.api.ListDocumentTypes(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("no se pudieron cargar los tipos de documento")
		types = nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.DocumentTypes = types
	c.setLocked(s)
}

// Export descarga el archivo con el filtro y formato actuales y lo guarda con el FileSaver.
// Mientras hay una exportación en curso, una nueva devuelve domain.ErrExportInProgress.
func (c *Controller) Export(ctx context.Context) (string, error) {
	c.mu.Lock()
	next, ok := startExport(c.state)
	if !ok {
		c.mu.Unlock()
		return "", domain.ErrExportInProgress
	}
	filter, format := next.Filter, next.Format
	c.setLocked(next)
	c.mu.Unlock()

	path, err := c.export(ctx, filter, format)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Error().Err(err).Str("formato", string(format)).Msg("exportación fallida")
		c.setLocked(exportFailed(c.state, err))
		return "", err
	}
	c.log.Info().Str("archivo", path).Str("formato", string(format)).Msg("exportación guardada")
	c.setLocked(exportSucceeded(c.state, path))
	return path, nil
}

func (c *Controller) export(ctx context.Context, filter entity.Filter, format entity.ExportFormat) (string, error) {
	file, err := c.api.Export(ctx, filter, format)
	if err != nil {
		return "", err
	}
	path, err := c.saver.SaveFile(ctx, file.Data, file.Name)
	if err != nil {
		return "", fmt.Errorf("guardar %s: %w", file.Name, err)
	}
	return path, nil
}
