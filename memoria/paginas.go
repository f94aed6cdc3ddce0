package memoria

import (
	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

// Estados de una entrada del mapa de páginas libres (un byte por página,
// en los primeros OffsetTablas bytes de la página 0)
const (
	pagLibre   byte = 0
	pagOcupada byte = 1
)

// AsignarPagina busca la primera página libre en orden creciente, la
// marca como ocupada y la devuelve. El orden de búsqueda es parte del
// contrato: siempre gana el índice libre más bajo.
func (m *Memoria) AsignarPagina() (NumPagina, error) {
	for i := 0; i < m.offsetTablas; i++ {
		if m.mem[m.ComponerDireccion(0, i)] == pagLibre {
			m.mem[m.ComponerDireccion(0, i)] = pagOcupada
			utils.InfoLog.Debug("Página asignada", "página", i)
			return NumPagina(i), nil
		}
	}

	utils.ErrorLog.Error("No hay páginas libres disponibles")
	return 0, ErrSinPaginasLibres
}

// LiberarPagina marca una página como libre en el mapa. Liberar una
// página ya libre no tiene efecto.
func (m *Memoria) LiberarPagina(pagina NumPagina) {
	m.mem[m.ComponerDireccion(0, int(pagina))] = pagLibre
	utils.InfoLog.Debug("Página liberada", "página", pagina)
}

// PaginaLibre informa si una página está libre según el mapa
func (m *Memoria) PaginaLibre(pagina NumPagina) bool {
	return m.mem[m.ComponerDireccion(0, int(pagina))] == pagLibre
}

// ContarPaginasLibres cuenta las páginas libres del mapa
func (m *Memoria) ContarPaginasLibres() int {
	libres := 0
	for i := 0; i < m.offsetTablas; i++ {
		if m.mem[m.ComponerDireccion(0, i)] == pagLibre {
			libres++
		}
	}
	return libres
}
