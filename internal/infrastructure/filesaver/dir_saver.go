package filesaver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxSuffix límite de nombres alternativos antes de rendirse.
const maxSuffix = 1000

// DirSaver guarda descargas en un directorio local sin sobrescribir archivos existentes.
type DirSaver struct {
	dir string
}

// NewDirSaver construye el saver. El directorio se crea en el primer guardado.
func NewDirSaver(dir string) *DirSaver {
	if dir == "" {
		dir = "."
	}
	return &DirSaver{dir: dir}
}

// Dir directorio destino.
func (s *DirSaver) Dir() string { return s.dir }

// SaveFile escribe data en un archivo temporal y lo enlaza con el nombre sugerido
// (o "nombre (n).ext" si ya existe). El temporal se elimina siempre.
func (s *DirSaver) SaveFile(ctx context.Context, data []byte, suggestedName string) (string, error) {
	name := sanitize(suggestedName)
	if name == "" {
		return "", fmt.Errorf("nombre de archivo vacío")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".descarga-*")
	if err != nil {
		return "", fmt.Errorf("crear temporal: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", fmt.Errorf("permisos: %w", err)
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 0; i < maxSuffix; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		dst := filepath.Join(s.dir, candidate)
		// os.Link falla si dst existe: nunca se pisa un archivo del usuario.
		err := os.Link(tmpPath, dst)
		if err == nil {
			return dst, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("guardar %s: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("demasiados archivos con el nombre %s", name)
}

// sanitize se queda con el nombre base y descarta rutas.
func sanitize(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	name = filepath.Base(name)
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
