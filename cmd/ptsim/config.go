package main

// DriverConfig representa la configuración del driver de línea de comandos
type DriverConfig struct {
	LogLevel     string `json:"LOG_LEVEL"`
	TamMemoria   int    `json:"TAM_MEMORIA"`       // Tamaño de la memoria en bytes
	TamPagina    int    `json:"TAM_PAGINA"`        // Tamaño de página en bytes
	CantPaginas  int    `json:"CANTIDAD_PAGINAS"`  // Cantidad de páginas físicas
	OffsetTablas int    `json:"OFFSET_TABLAS"`     // Inicio del directorio dentro de la página 0
	DumpPath     string `json:"DUMP_PATH"`         // Ruta para los archivos de dump
}

var config *DriverConfig
