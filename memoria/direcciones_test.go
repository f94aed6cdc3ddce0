package memoria

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponerDireccion(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.Equal(t, 0, mem.ComponerDireccion(0, 0))
	require.Equal(t, 255, mem.ComponerDireccion(0, 255))
	require.Equal(t, 256, mem.ComponerDireccion(1, 0))
	require.Equal(t, 3*256+10, mem.ComponerDireccion(3, 10))
	require.Equal(t, 16383, mem.ComponerDireccion(63, 255))
}

func TestComponerYDividirSonInversas(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	for pagina := 0; pagina < mem.CantPaginas(); pagina++ {
		for offset := 0; offset < mem.TamPagina(); offset++ {
			dir := mem.ComponerDireccion(NumPagina(pagina), offset)
			indice, off := mem.DividirDireccion(dir)

			require.Equal(t, pagina, indice, "página en dirección %d", dir)
			require.Equal(t, offset, off, "desplazamiento en dirección %d", dir)
		}
	}
}
