package memoria

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

func TestMain(m *testing.M) {
	utils.InicializarLogger("error", "memoria-test")
	os.Exit(m.Run())
}

func nuevaMemoriaDePrueba(t *testing.T) *Memoria {
	t.Helper()
	mem, err := NuevaMemoria(ConfigPorDefecto())
	require.NoError(t, err)
	return mem
}

func TestGeometriaPorDefecto(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.Equal(t, 256, mem.TamPagina())
	require.Equal(t, 64, mem.CantPaginas())
	require.Equal(t, 64, mem.OffsetTablas())
}

func TestPaginaCeroOcupadaAlInicio(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.False(t, mem.PaginaLibre(0))
	require.Equal(t, 63, mem.ContarPaginasLibres())
}

func TestGeometriaInvalida(t *testing.T) {
	casos := []struct {
		nombre string
		cfg    Config
	}{
		{"página no potencia de dos", Config{TamMemoria: 15000, TamPagina: 250, CantPaginas: 60, OffsetTablas: 64}},
		{"tamaños inconsistentes", Config{TamMemoria: 16384, TamPagina: 256, CantPaginas: 32, OffsetTablas: 64}},
		{"mapa no cubre las páginas", Config{TamMemoria: 32768, TamPagina: 256, CantPaginas: 128, OffsetTablas: 64}},
		{"metadata no entra en página 0", Config{TamMemoria: 8192, TamPagina: 64, CantPaginas: 128, OffsetTablas: 128}},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			_, err := NuevaMemoria(caso.cfg)
			require.Error(t, err)
		})
	}
}
