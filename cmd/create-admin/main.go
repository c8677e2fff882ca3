package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/campus-project/campus-server/internal/auth"
	"github.com/campus-project/campus-server/internal/config"
	"github.com/campus-project/campus-server/internal/database"
	"github.com/campus-project/campus-server/internal/database/queries"
	"github.com/campus-project/campus-server/internal/models"
	"golang.org/x/term"
)

// Creates the first admin account interactively. The password is read from
// the terminal without echo.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	reader := bufio.NewReader(os.Stdin)
	nombre := prompt(reader, "Nombre: ")
	apellido := prompt(reader, "Apellido: ")
	email := prompt(reader, "Email: ")
	cedula := prompt(reader, "Cédula: ")

	fmt.Print("Contraseña: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	if len(passwordBytes) == 0 {
		log.Fatal("Password must not be empty")
	}

	hash, err := auth.HashPassword(string(passwordBytes))
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Nombre:   nombre,
		Apellido: apellido,
		Email:    email,
		Cedula:   cedula,
		Password: hash,
		Rol:      models.RoleAdmin,
	}

	userQueries := queries.NewUserQueries(db.DB)
	if err := userQueries.CreateUser(user); err != nil {
		if queries.IsUniqueViolation(err) {
			log.Fatalf("A user with that email or cedula already exists")
		}
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin created: %s %s <%s> (id %d)\n", user.Nombre, user.Apellido, user.Email, user.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	value := strings.TrimSpace(line)
	if value == "" {
		log.Fatalf("Value must not be empty")
	}
	return value
}
