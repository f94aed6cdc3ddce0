package memoria

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsignaSiempreLaPaginaLibreMasBaja(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	for esperada := 1; esperada <= 3; esperada++ {
		pagina, err := mem.AsignarPagina()
		require.NoError(t, err)
		require.Equal(t, NumPagina(esperada), pagina)
	}

	// Al liberar una del medio, la próxima asignación la reutiliza
	mem.LiberarPagina(2)

	pagina, err := mem.AsignarPagina()
	require.NoError(t, err)
	require.Equal(t, NumPagina(2), pagina)

	pagina, err = mem.AsignarPagina()
	require.NoError(t, err)
	require.Equal(t, NumPagina(4), pagina)
}

func TestPaginaCeroNuncaSeAsigna(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	for i := 0; i < 63; i++ {
		pagina, err := mem.AsignarPagina()
		require.NoError(t, err)
		require.NotEqual(t, NumPagina(0), pagina)
	}

	_, err := mem.AsignarPagina()
	require.ErrorIs(t, err, ErrSinPaginasLibres)

	// El pedido fallido no altera el mapa
	require.Equal(t, 0, mem.ContarPaginasLibres())
	require.False(t, mem.PaginaLibre(0))
}

func TestLiberarDosVecesEsInofensivo(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	pagina, err := mem.AsignarPagina()
	require.NoError(t, err)

	mem.LiberarPagina(pagina)
	libresDespues := mem.ContarPaginasLibres()

	mem.LiberarPagina(pagina)
	require.Equal(t, libresDespues, mem.ContarPaginasLibres())
	require.True(t, mem.PaginaLibre(pagina))
}
