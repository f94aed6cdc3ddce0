package main

// MemoryConfig representa la configuración del módulo Memoria
type MemoryConfig struct {
	IPMemory     string `json:"IP_MEMORIA"`
	PortMemory   int    `json:"PUERTO_MEMORIA"`
	LogLevel     string `json:"LOG_LEVEL"`
	MemorySize   int    `json:"TAM_MEMORIA"`      // Tamaño de la memoria en bytes
	PageSize     int    `json:"TAM_PAGINA"`       // Tamaño de página en bytes
	PageCount    int    `json:"CANTIDAD_PAGINAS"` // Cantidad de páginas físicas
	TableOffset  int    `json:"OFFSET_TABLAS"`    // Inicio del directorio dentro de la página 0
	MemoryDelay  int    `json:"RETARDO_MEMORIA"`  // Retardo simulado de acceso a memoria
	DumpPath     string `json:"DUMP_PATH"`        // Ruta para los archivos de dump
}

var config *MemoryConfig
