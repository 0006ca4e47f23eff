// create_user inserts a user directly, bypassing the registration
// endpoint. Useful for seeding the dev-mode default user.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"tarefas_webapp/internal/db"
	"tarefas_webapp/internal/domain"
	"tarefas_webapp/internal/repository"
	"tarefas_webapp/internal/service"
)

func main() {
	name := flag.String("nome", "Usuário Teste", "user name")
	email := flag.String("email", "teste@example.com", "user email")
	password := flag.String("senha", "1234", "user password")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	if taken, err := repo.EmailExists(ctx, *email, 0); err != nil {
		log.Fatalf("email check failed: %v", err)
	} else if taken {
		log.Fatalf("email %s already registered", *email)
	}

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	u := &domain.User{Name: *name, Email: *email, PasswordHash: hash}
	if err := repo.Insert(ctx, u); err != nil {
		log.Fatalf("create user failed: %v", err)
	}

	log.Printf("user created id=%d email=%s\n", u.ID, u.Email)
}
