// Package migrations embute os arquivos SQL do goose para aplicação na partida.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
