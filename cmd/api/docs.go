package main

// @title           POS Cerâmica API
// @version         1.0
// @description     API do ponto de venda e controle de estoque para loja de revestimentos e materiais hidráulicos

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
