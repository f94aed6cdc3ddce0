package memoria

import (
	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

// TablaDeProceso devuelve la página física que contiene la tabla de
// páginas del proceso, o 0 si el proceso no tiene tabla. No valida el
// rango del PID: un identificador fuera del directorio aliasa los bytes
// vecinos de la página 0, igual que el diseño original.
func (m *Memoria) TablaDeProceso(pid int) NumPagina {
	return NumPagina(m.mem[m.ComponerDireccion(0, m.offsetTablas+pid)])
}

// EstablecerTablaDeProceso registra en el directorio la página que
// contiene la tabla de páginas del proceso.
func (m *Memoria) EstablecerTablaDeProceso(pid int, pagina NumPagina) {
	m.mem[m.ComponerDireccion(0, m.offsetTablas+pid)] = byte(pagina)
	utils.InfoLog.Debug("Tabla de páginas registrada", "pid", pid, "tabla", pagina)
}

// entradaTabla lee la entrada indice de la tabla de páginas alojada en
// la página tabla: el número de página física que respalda esa página
// lógica, o 0 si no está mapeada.
func (m *Memoria) entradaTabla(tabla NumPagina, indice int) NumPagina {
	return NumPagina(m.mem[m.ComponerDireccion(tabla, indice)])
}

// escribirEntradaTabla escribe la entrada indice de la tabla de páginas
func (m *Memoria) escribirEntradaTabla(tabla NumPagina, indice int, pagina NumPagina) {
	m.mem[m.ComponerDireccion(tabla, indice)] = byte(pagina)
}
