package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByUsername busca um usuário pelo nome de acesso
	FindByUsername(ctx context.Context, username string) (*User, error)

	// List lista os usuários com paginação
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// Delete remove um usuário do sistema
	Delete(ctx context.Context, id string) error

	// UpdateStatus atualiza o status de um usuário
	UpdateStatus(ctx context.Context, id string, status Status) error

	// UpdatePassword atualiza a senha de um usuário
	UpdatePassword(ctx context.Context, id, hashedPassword string) error

	// Count conta quantos usuários existem
	Count(ctx context.Context) (int, error)

	// ExistsByUsername verifica se já existe usuário com o nome de acesso
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// AuthLogRepository registra as tentativas de autenticação
type AuthLogRepository interface {
	// Create registra uma tentativa de autenticação
	Create(ctx context.Context, log *AuthLog) error

	// FindByUser lista as tentativas de um usuário, mais recentes primeiro
	FindByUser(ctx context.Context, userID string, limit, offset int) ([]*AuthLog, error)

	// List lista as tentativas de autenticação, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*AuthLog, error)
}
