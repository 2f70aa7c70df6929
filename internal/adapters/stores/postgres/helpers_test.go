package postgres

import "io/fs"

func fsReadFile(name string) ([]byte, error) {
	return fs.ReadFile(Migrations(), name)
}
