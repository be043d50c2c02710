// tokengen emite un token Bearer para operar contra la API.
//
// Uso: go run ./cmd/tokengen -operator <nombre> [-minutes 60]
// Lee JWT_SECRET y JWT_ISSUER de la configuración (env o archivo config).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/stocktrack-api/pkg/config"
	"github.com/jhoicas/stocktrack-api/pkg/jwt"
)

func main() {
	operator := flag.String("operator", "", "nombre del operador que firmará las mutaciones")
	minutes := flag.Int("minutes", 0, "minutos de validez (0 = valor configurado)")
	flag.Parse()

	if *operator == "" {
		fmt.Fprintln(os.Stderr, "falta -operator")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido")
		os.Exit(1)
	}

	exp := cfg.JWT.Expiration
	if *minutes > 0 {
		exp = *minutes
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *operator, cfg.JWT.Issuer, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
