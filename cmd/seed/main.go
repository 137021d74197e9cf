// seed crea los usuarios iniciales del sistema si no existen:
// admin@company.com / admin123 (ADMIN) y sales@company.com / sales123 (SALES).
//
// Uso: go run ./cmd/seed
// Lee la conexión de DATABASE_URL o de las variables DB_* (igual que la API).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cotizador-api/pkg/config"
)

// Credenciales iniciales. Cambiar la contraseña del ADMIN tras el primer login.
var seedUsers = []struct {
	email    string
	password string
	name     string
	role     string
}{
	{"admin@company.com", "admin123", "Administrador", entity.RoleAdmin},
	{"sales@company.com", "sales123", "Ventas", entity.RoleSales},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(su.email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "consultar %s: %v\n", su.email, err)
			os.Exit(1)
		}
		if existing != nil {
			fmt.Printf("%s ya existe, omitido\n", su.email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear contraseña: %v\n", err)
			os.Exit(1)
		}

		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        su.email,
			PasswordHash: string(hash),
			Name:         su.name,
			Role:         su.role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(user); err != nil {
			fmt.Fprintf(os.Stderr, "crear %s: %v\n", su.email, err)
			os.Exit(1)
		}
		fmt.Printf("creado %s (%s)\n", su.email, su.role)
	}
}
