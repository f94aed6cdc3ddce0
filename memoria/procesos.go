package memoria

import (
	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

// Acceso es el registro de traza de una lectura o escritura
type Acceso struct {
	PID       int
	DirLogica int
	DirFisica int
	Valor     byte
}

// NuevoProceso asigna la tabla de páginas del proceso y cantPaginas
// páginas de datos, registrando cada una en la tabla.
//
// Si la memoria se agota a mitad de camino la operación se corta ahí,
// sin deshacer nada: la tabla y las páginas ya asignadas quedan
// ocupadas y mapeadas. Ese estado parcial es observable en el mapa de
// páginas libres y es parte del comportamiento contratado.
func (m *Memoria) NuevoProceso(pid int, cantPaginas int) error {
	utils.InfoLog.Info("Creando proceso", "pid", pid, "páginas_pedidas", cantPaginas)

	tabla, err := m.AsignarPagina()
	if err != nil {
		utils.ErrorLog.Error("Sin espacio para la tabla de páginas", "pid", pid)
		return &ErrSinEspacio{PID: pid, Recurso: RecursoTablaPaginas}
	}
	m.registrarAsignacion(pid)

	m.EstablecerTablaDeProceso(pid, tabla)

	for i := 0; i < cantPaginas; i++ {
		pagina, err := m.AsignarPagina()
		if err != nil {
			utils.ErrorLog.Error("Sin espacio para página de datos",
				"pid", pid, "páginas_asignadas", i, "páginas_pedidas", cantPaginas)
			return &ErrSinEspacio{PID: pid, Recurso: RecursoPaginaDatos}
		}
		m.registrarAsignacion(pid)

		m.escribirEntradaTabla(tabla, i, pagina)
	}

	utils.InfoLog.Info("Proceso creado", "pid", pid, "tabla", tabla, "páginas", cantPaginas)
	return nil
}

// FinalizarProceso libera todas las páginas mapeadas en la tabla del
// proceso y la tabla misma. Recorre la tabla completa, no solo las
// primeras CantPaginas entradas. La entrada del directorio queda
// apuntando a la tabla ya liberada; no se limpia.
func (m *Memoria) FinalizarProceso(pid int) {
	tabla := m.TablaDeProceso(pid)
	utils.InfoLog.Info("Finalizando proceso", "pid", pid, "tabla", tabla)

	for i := 0; i < m.tamPagina; i++ {
		pagina := m.entradaTabla(tabla, i)
		if pagina != 0 {
			m.LiberarPagina(pagina)
			m.registrarLiberacion(pid)
		}
	}

	m.LiberarPagina(tabla)
	m.registrarLiberacion(pid)

	utils.InfoLog.Info("Proceso finalizado", "pid", pid)
}

// TraducirDireccion convierte una dirección lógica del proceso en una
// dirección física: índice de tabla y desplazamiento, entrada de la
// tabla, composición con el desplazamiento. No valida que la entrada
// esté mapeada: una entrada en 0 resuelve dentro de la página 0, igual
// que el diseño original.
func (m *Memoria) TraducirDireccion(pid int, dirLogica int) int {
	indice, offset := m.DividirDireccion(dirLogica)

	tabla := m.TablaDeProceso(pid)
	pagina := m.entradaTabla(tabla, indice)
	m.registrarTraduccion(pid)

	dirFisica := m.ComponerDireccion(pagina, offset)

	utils.InfoLog.Debug("Dirección traducida",
		"pid", pid, "dir_lógica", dirLogica, "página", pagina, "desplazamiento", offset, "dir_física", dirFisica)

	return dirFisica
}

// EscribirByte escribe un byte en una dirección lógica del proceso y
// devuelve el registro de traza del acceso.
func (m *Memoria) EscribirByte(pid int, dirLogica int, valor byte) Acceso {
	dirFisica := m.TraducirDireccion(pid, dirLogica)

	m.mem[dirFisica] = valor
	m.registrarEscritura(pid)

	utils.InfoLog.Info("Escritura en memoria",
		"pid", pid, "dir_lógica", dirLogica, "dir_física", dirFisica, "valor", valor)

	return Acceso{PID: pid, DirLogica: dirLogica, DirFisica: dirFisica, Valor: valor}
}

// LeerByte lee un byte de una dirección lógica del proceso y devuelve
// el registro de traza del acceso.
func (m *Memoria) LeerByte(pid int, dirLogica int) Acceso {
	dirFisica := m.TraducirDireccion(pid, dirLogica)

	valor := m.mem[dirFisica]
	m.registrarLectura(pid)

	utils.InfoLog.Info("Lectura de memoria",
		"pid", pid, "dir_lógica", dirLogica, "dir_física", dirFisica, "valor", valor)

	return Acceso{PID: pid, DirLogica: dirLogica, DirFisica: dirFisica, Valor: valor}
}
