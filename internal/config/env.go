package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvNodeEnv selects the build environment.
const EnvNodeEnv = "NODE_ENV"

// Production is the only NODE_ENV value that activates the production base path.
const Production = "production"

// Environment is the slice of the process environment the assembler reads.
type Environment struct {
	NodeEnv string
}

// IsProduction reports whether NODE_ENV equals "production" exactly.
func (e Environment) IsProduction() bool { return e.NodeEnv == Production }

// LoadEnvironment loads .env.local and .env from dir and reads the
// environment. Variables already set in the process win, then .env.local,
// then .env.
func LoadEnvironment(dir string) (Environment, error) {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(filepath.Join(dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Environment{}, err
		}
	}
	return Environment{NodeEnv: os.Getenv(EnvNodeEnv)}, nil
}
