package config

// SecurityConfig задает параметры хэширования паролей.
type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"BOOKSTORE_BCRYPT_COST" env-default:"10"`
}
