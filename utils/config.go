package utils

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// CargarConfiguracion lee un archivo JSON y lo decodifica al tipo de
// configuración del módulo que llama.
func CargarConfiguracion[T any](ruta string) (*T, error) {
	slog.Info("Cargando configuración", "ruta", ruta)

	absPath, err := filepath.Abs(ruta)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo ruta absoluta de %s: %w", ruta, err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("error abriendo archivo de configuración %s: %w", absPath, err)
	}
	defer file.Close()

	var config T
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("error decodificando configuración %s: %w", absPath, err)
	}

	slog.Info("Configuración cargada correctamente", "archivo", absPath)
	return &config, nil
}
