package memoria

// MetricasProceso acumula estadísticas de uso de memoria de un proceso
type MetricasProceso struct {
	Asignaciones int // Páginas asignadas (tabla incluida)
	Liberaciones int // Páginas liberadas
	Lecturas     int // Bytes leídos
	Escrituras   int // Bytes escritos
	Traducciones int // Traducciones de dirección realizadas
}

// Metricas devuelve una copia de las métricas acumuladas del proceso
func (m *Memoria) Metricas(pid int) MetricasProceso {
	if met, existe := m.metricas[pid]; existe {
		return *met
	}
	return MetricasProceso{}
}

func (m *Memoria) metricasDe(pid int) *MetricasProceso {
	met, existe := m.metricas[pid]
	if !existe {
		met = &MetricasProceso{}
		m.metricas[pid] = met
	}
	return met
}

func (m *Memoria) registrarAsignacion(pid int) {
	m.metricasDe(pid).Asignaciones++
}

func (m *Memoria) registrarLiberacion(pid int) {
	m.metricasDe(pid).Liberaciones++
}

func (m *Memoria) registrarLectura(pid int) {
	m.metricasDe(pid).Lecturas++
}

func (m *Memoria) registrarEscritura(pid int) {
	m.metricasDe(pid).Escrituras++
}

func (m *Memoria) registrarTraduccion(pid int) {
	m.metricasDe(pid).Traducciones++
}
