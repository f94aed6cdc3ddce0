package memoria

import (
	"fmt"
	"math/bits"

	"github.com/sisoputnfrba/tp-ptsim-LosCuervosXeneizes/utils"
)

// NumPagina identifica una página física. El almacenamiento subyacente
// sigue siendo un byte plano dentro del arreglo de memoria.
type NumPagina uint8

// Config define la geometría de la memoria física simulada
type Config struct {
	TamMemoria   int // Tamaño total en bytes
	TamPagina    int // Tamaño de página en bytes, potencia de dos
	CantPaginas  int // Cantidad de páginas físicas
	OffsetTablas int // Desplazamiento en página 0 donde empieza el directorio de procesos
}

// ConfigPorDefecto reproduce la geometría clásica del simulador:
// 16384 bytes, páginas de 256, 64 páginas, directorio a partir del byte 64.
func ConfigPorDefecto() Config {
	return Config{
		TamMemoria:   16384,
		TamPagina:    256,
		CantPaginas:  64,
		OffsetTablas: 64,
	}
}

// Memoria es la dueña del arreglo de memoria física. Toda la metadata
// (mapa de páginas libres y directorio de procesos) vive dentro de la
// página 0 del mismo arreglo; no hay estructuras paralelas.
type Memoria struct {
	mem          []byte
	tamPagina    int
	cantPaginas  int
	offsetTablas int
	shift        int

	metricas map[int]*MetricasProceso
}

// NuevaMemoria valida la geometría, inicializa el arreglo en cero y
// marca la página 0 como ocupada.
func NuevaMemoria(cfg Config) (*Memoria, error) {
	if cfg.TamPagina <= 0 || cfg.TamPagina&(cfg.TamPagina-1) != 0 {
		return nil, fmt.Errorf("tamaño de página inválido: %d (debe ser potencia de dos)", cfg.TamPagina)
	}
	if cfg.TamPagina*cfg.CantPaginas != cfg.TamMemoria {
		return nil, fmt.Errorf("geometría inconsistente: %d páginas de %d bytes no equivalen a %d bytes",
			cfg.CantPaginas, cfg.TamPagina, cfg.TamMemoria)
	}
	if cfg.CantPaginas > cfg.OffsetTablas {
		return nil, fmt.Errorf("el mapa de páginas libres (%d entradas) no cubre las %d páginas físicas",
			cfg.OffsetTablas, cfg.CantPaginas)
	}
	if cfg.OffsetTablas+cfg.CantPaginas > cfg.TamPagina {
		return nil, fmt.Errorf("el mapa de libres y el directorio (%d bytes) no entran en la página 0 de %d bytes",
			cfg.OffsetTablas+cfg.CantPaginas, cfg.TamPagina)
	}
	if cfg.CantPaginas > 256 {
		return nil, fmt.Errorf("cantidad de páginas inválida: %d (las entradas de tabla son de un byte)", cfg.CantPaginas)
	}

	m := &Memoria{
		mem:          make([]byte, cfg.TamMemoria),
		tamPagina:    cfg.TamPagina,
		cantPaginas:  cfg.CantPaginas,
		offsetTablas: cfg.OffsetTablas,
		shift:        bits.TrailingZeros(uint(cfg.TamPagina)),
		metricas:     make(map[int]*MetricasProceso),
	}

	// La página 0 guarda el mapa de libres y el directorio: ocupada desde el inicio
	m.mem[m.ComponerDireccion(0, 0)] = pagOcupada

	utils.InfoLog.Info("Memoria inicializada",
		"tamaño_total", cfg.TamMemoria,
		"tamaño_página", cfg.TamPagina,
		"cantidad_páginas", cfg.CantPaginas,
		"offset_directorio", cfg.OffsetTablas)

	return m, nil
}

// TamPagina devuelve el tamaño de página en bytes
func (m *Memoria) TamPagina() int { return m.tamPagina }

// CantPaginas devuelve la cantidad de páginas físicas
func (m *Memoria) CantPaginas() int { return m.cantPaginas }

// OffsetTablas devuelve el desplazamiento del directorio dentro de la página 0
func (m *Memoria) OffsetTablas() int { return m.offsetTablas }
