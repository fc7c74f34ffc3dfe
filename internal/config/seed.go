package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"taskmanager/internal/core/domain"
)

type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	PasswordEnv string `yaml:"password_env"`
}

// LoadSeedUsers reads the seed file and resolves each password from the
// variable named by password_env.
func LoadSeedUsers(path string, lookupEnv func(string) (string, bool)) ([]domain.SeedUser, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %q: %w", path, err)
	}

	var file seedFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %q: %w", path, err)
	}

	users := make([]domain.SeedUser, 0, len(file.Users))
	for i, user := range file.Users {
		name := strings.TrimSpace(user.Name)
		if name == "" {
			return nil, fmt.Errorf("seed user #%d: name is required", i+1)
		}

		role := domain.Role(user.Role)
		switch role {
		case "":
			role = domain.RoleUser
		case domain.RoleAdmin, domain.RoleUser:
		default:
			return nil, fmt.Errorf("seed user %q: unknown role %q", name, user.Role)
		}

		password, ok := lookupEnv(user.PasswordEnv)
		if !ok || password == "" {
			return nil, fmt.Errorf("seed user %q: %s is not set", name, user.PasswordEnv)
		}

		users = append(users, domain.SeedUser{Name: name, Role: role, Password: password})
	}

	return users, nil
}
