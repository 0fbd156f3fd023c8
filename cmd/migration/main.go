package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/pos-ceramica/internal/infrastructure/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	down := flag.Bool("down", false, "desfaz a última migração em vez de aplicar as pendentes")
	flag.Parse()

	if *down {
		if err := database.RollbackMigration(); err != nil {
			log.Fatalf("Erro ao desfazer migração: %v", err)
		}
		log.Println("Última migração desfeita com sucesso")
		return
	}

	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Erro ao aplicar migrações: %v", err)
	}
	log.Println("Migrações aplicadas com sucesso")
}
