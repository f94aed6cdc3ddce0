package memoria

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNuevoProcesoMapeaPaginasDistintas(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.NoError(t, mem.NuevoProceso(5, 3))

	tabla := mem.TablaDeProceso(5)
	require.NotEqual(t, NumPagina(0), tabla)

	vistas := map[NumPagina]bool{}
	for i := 0; i < 3; i++ {
		pagina := mem.entradaTabla(tabla, i)

		require.NotEqual(t, NumPagina(0), pagina, "entrada %d sin mapear", i)
		require.NotEqual(t, tabla, pagina, "entrada %d apunta a la propia tabla", i)
		require.False(t, vistas[pagina], "página %d repetida", pagina)
		vistas[pagina] = true
	}

	// Solo 3 entradas mapeadas
	for i := 3; i < mem.TamPagina(); i++ {
		require.Equal(t, NumPagina(0), mem.entradaTabla(tabla, i))
	}
}

func TestEscrituraYLecturaMismaDireccion(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.NoError(t, mem.NuevoProceso(0, 1))

	escritura := mem.EscribirByte(0, 0, 42)
	lectura := mem.LeerByte(0, 0)

	require.Equal(t, byte(42), lectura.Valor)
	require.Equal(t, escritura.DirFisica, lectura.DirFisica)
}

func TestEscrituraEnSegundaPagina(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.NoError(t, mem.NuevoProceso(7, 2))

	// Tabla en la página 1, datos en las páginas 2 y 3
	dirLogica := mem.TamPagina() + 9
	acceso := mem.EscribirByte(7, dirLogica, 99)

	require.Equal(t, mem.ComponerDireccion(3, 9), acceso.DirFisica)
	require.Equal(t, byte(99), mem.LeerByte(7, dirLogica).Valor)
}

func TestFinalizarProcesoDevuelveTodasLasPaginas(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	libresAntes := mem.ContarPaginasLibres()

	require.NoError(t, mem.NuevoProceso(9, 4))
	require.Equal(t, libresAntes-5, mem.ContarPaginasLibres(), "tabla + 4 páginas de datos")

	mem.FinalizarProceso(9)
	require.Equal(t, libresAntes, mem.ContarPaginasLibres())
}

func TestDirectorioConservaLaTablaLiberada(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.NoError(t, mem.NuevoProceso(4, 2))
	tabla := mem.TablaDeProceso(4)

	mem.FinalizarProceso(4)

	// La entrada del directorio no se limpia: queda apuntando a la
	// tabla ya liberada
	require.Equal(t, tabla, mem.TablaDeProceso(4))
	require.True(t, mem.PaginaLibre(tabla))
}

func TestSinEspacioParaTablaDePaginas(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	// Consumir las 63 páginas libres
	require.NoError(t, mem.NuevoProceso(1, 62))
	require.Equal(t, 0, mem.ContarPaginasLibres())

	err := mem.NuevoProceso(2, 1)

	var sinEspacio *ErrSinEspacio
	require.True(t, errors.As(err, &sinEspacio))
	require.Equal(t, 2, sinEspacio.PID)
	require.Equal(t, RecursoTablaPaginas, sinEspacio.Recurso)
	require.EqualError(t, err, "OOM: proc 2: page table")

	// El proceso no llegó a registrarse
	require.Equal(t, NumPagina(0), mem.TablaDeProceso(2))
}

func TestSinEspacioParaPaginaDeDatosNoDeshace(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.NoError(t, mem.NuevoProceso(1, 50))
	libresAntes := mem.ContarPaginasLibres() // 12

	err := mem.NuevoProceso(2, 20)

	var sinEspacio *ErrSinEspacio
	require.True(t, errors.As(err, &sinEspacio))
	require.Equal(t, RecursoPaginaDatos, sinEspacio.Recurso)
	require.EqualError(t, err, "OOM: proc 2: data page")

	// Sin rollback: la tabla y las páginas parciales quedan ocupadas
	require.Equal(t, 0, mem.ContarPaginasLibres())

	tabla := mem.TablaDeProceso(2)
	require.NotEqual(t, NumPagina(0), tabla)
	for i := 0; i < libresAntes-1; i++ {
		require.NotEqual(t, NumPagina(0), mem.entradaTabla(tabla, i), "entrada parcial %d", i)
	}
}

func TestTraduccionSinEntradaMapeadaResuelveEnPaginaCero(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.NoError(t, mem.NuevoProceso(3, 1))

	// La página lógica 5 no está mapeada: la entrada vale 0 y la
	// dirección cae dentro de la página 0 (comportamiento heredado)
	dirLogica := 5*mem.TamPagina() + 17
	require.Equal(t, 17, mem.TraducirDireccion(3, dirLogica))
}

func TestMetricasDeProceso(t *testing.T) {
	mem := nuevaMemoriaDePrueba(t)

	require.NoError(t, mem.NuevoProceso(6, 2))
	mem.EscribirByte(6, 0, 1)
	mem.EscribirByte(6, 1, 2)
	mem.LeerByte(6, 0)
	mem.FinalizarProceso(6)

	met := mem.Metricas(6)
	require.Equal(t, 3, met.Asignaciones, "tabla + 2 páginas")
	require.Equal(t, 3, met.Liberaciones)
	require.Equal(t, 2, met.Escrituras)
	require.Equal(t, 1, met.Lecturas)
	require.Equal(t, 3, met.Traducciones)

	// Un proceso desconocido devuelve métricas en cero
	require.Equal(t, MetricasProceso{}, mem.Metricas(99))
}
