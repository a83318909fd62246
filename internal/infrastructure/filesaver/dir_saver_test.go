package filesaver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tabla-fidelizacion/internal/infrastructure/filesaver"
)

func TestSaveFile_EscribeConNombreSugerido(t *testing.T) {
	dir := t.TempDir()
	s := filesaver.NewDirSaver(dir)

	path, err := s.SaveFile(context.Background(), []byte("a;b\n"), "usuarios_export.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "usuarios_export.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a;b\n", string(data))
}

func TestSaveFile_NoSobrescribe(t *testing.T) {
	dir := t.TempDir()
	s := filesaver.NewDirSaver(dir)
	ctx := context.Background()

	first, err := s.SaveFile(ctx, []byte("1"), "usuarios_export.txt")
	require.NoError(t, err)
	second, err := s.SaveFile(ctx, []byte("2"), "usuarios_export.txt")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Join(dir, "usuarios_export (1).txt"), second)

	data, _ := os.ReadFile(first)
	assert.Equal(t, "1", string(data), "el archivo original no se pisa")
}

func TestSaveFile_LiberaTemporalYSanitiza(t *testing.T) {
	dir := t.TempDir()
	s := filesaver.NewDirSaver(filepath.Join(dir, "nuevo"))

	path, err := s.SaveFile(context.Background(), []byte("x"), "../../etc/usuarios.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nuevo", "usuarios.csv"), path)

	entries, err := os.ReadDir(filepath.Join(dir, "nuevo"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no deben quedar temporales")
	assert.Equal(t, "usuarios.csv", entries[0].Name())
}

func TestSaveFile_NombreVacio(t *testing.T) {
	s := filesaver.NewDirSaver(t.TempDir())
	_, err := s.SaveFile(context.Background(), []byte("x"), "  ")
	assert.Error(t, err)
}
