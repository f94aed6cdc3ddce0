package main

// ConsoleConfig representa la configuración de la consola remota
type ConsoleConfig struct {
	IPMemory   string `json:"IP_MEMORIA"`
	PortMemory int    `json:"PUERTO_MEMORIA"`
	LogLevel   string `json:"LOG_LEVEL"`
}

var config *ConsoleConfig
