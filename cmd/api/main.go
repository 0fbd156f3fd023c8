package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	app, err := NewApp()
	if err != nil {
		log.Printf("Erro ao iniciar a aplicação: %v", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Printf("Erro no servidor: %v", err)
		os.Exit(1)
	}
}
