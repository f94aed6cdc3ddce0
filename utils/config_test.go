package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type configDePrueba struct {
	IP     string `json:"IP_MEMORIA"`
	Puerto int    `json:"PUERTO_MEMORIA"`
}

func TestCargarConfiguracion(t *testing.T) {
	InicializarLogger("error", "utils-test")

	ruta := filepath.Join(t.TempDir(), "config.json")
	contenido := `{"IP_MEMORIA": "127.0.0.1", "PUERTO_MEMORIA": 8002}`
	require.NoError(t, os.WriteFile(ruta, []byte(contenido), 0644))

	config, err := CargarConfiguracion[configDePrueba](ruta)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", config.IP)
	require.Equal(t, 8002, config.Puerto)
}

func TestCargarConfiguracionInexistente(t *testing.T) {
	InicializarLogger("error", "utils-test")

	_, err := CargarConfiguracion[configDePrueba](filepath.Join(t.TempDir(), "no-existe.json"))
	require.Error(t, err)
}
