package memoria

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

// MapaLibresTexto renderiza el mapa de páginas libres: '#' ocupada,
// '.' libre, 16 páginas por fila.
func (m *Memoria) MapaLibresTexto() string {
	var sb strings.Builder

	sb.WriteString("--- PAGE FREE MAP ---\n")

	for i := 0; i < m.offsetTablas; i++ {
		if m.mem[m.ComponerDireccion(0, i)] == pagLibre {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('#')
		}

		if (i+1)%16 == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// TablaTexto renderiza las entradas mapeadas de la tabla de páginas del
// proceso, página lógica -> página física en hexadecimal.
func (m *Memoria) TablaTexto(pid int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "--- PROCESS %d PAGE TABLE ---\n", pid)

	tabla := m.TablaDeProceso(pid)

	for i := 0; i < m.cantPaginas; i++ {
		pagina := m.entradaTabla(tabla, i)
		if pagina != 0 {
			fmt.Fprintf(&sb, "%02x -> %02x\n", i, pagina)
		}
	}

	return sb.String()
}

// CrearDump vuelca a un archivo el contenido de todas las páginas
// mapeadas del proceso, en orden de página lógica. Devuelve la ruta del
// archivo generado.
func (m *Memoria) CrearDump(pid int, rutaDir string) (string, error) {
	utils.InfoLog.Info("Iniciando memory dump", "pid", pid)

	timestamp := time.Now().Format("20060102-150405")
	nombreArchivo := fmt.Sprintf("%d-%s.dmp", pid, timestamp)
	rutaCompleta := filepath.Join(rutaDir, nombreArchivo)

	if err := os.MkdirAll(rutaDir, 0755); err != nil {
		utils.ErrorLog.Error("Error creando directorio de dumps", "ruta", rutaDir, "error", err)
		return "", fmt.Errorf("error al crear directorio para dumps: %w", err)
	}

	tabla := m.TablaDeProceso(pid)

	contenido := make([]byte, 0, m.cantPaginas*m.tamPagina)
	paginasVolcadas := 0
	for i := 0; i < m.cantPaginas; i++ {
		pagina := m.entradaTabla(tabla, i)
		if pagina == 0 {
			continue
		}
		inicio := m.ComponerDireccion(pagina, 0)
		contenido = append(contenido, m.mem[inicio:inicio+m.tamPagina]...)
		paginasVolcadas++
	}

	if err := os.WriteFile(rutaCompleta, contenido, 0644); err != nil {
		utils.ErrorLog.Error("Error escribiendo dump", "archivo", rutaCompleta, "error", err)
		return "", fmt.Errorf("error al escribir archivo de dump: %w", err)
	}

	utils.InfoLog.Info("Memory dump completado",
		"pid", pid, "archivo", nombreArchivo, "páginas", paginasVolcadas, "bytes", len(contenido))

	return rutaCompleta, nil
}
