package memoria

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerarImagenMapa(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)
	require.NoError(t, mem.NuevoProceso(0, 3))

	ruta := filepath.Join(t.TempDir(), "mapa.png")
	require.NoError(t, mem.GenerarImagenMapa(ruta))

	info, err := os.Stat(ruta)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
