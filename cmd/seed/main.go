// seed genera el script SQL de datos iniciales (productos y usuarios) a partir de
// planillas en CSV o XLSX.
//
// Uso: go run ./cmd/seed [productos.csv|.xlsx] [usuarios.csv|.xlsx]
// Por defecto busca productos.csv y usuarios.csv en el directorio actual.
// Los CSV en ISO-8859-1 (exportados desde Excel en Windows) se detectan y convierten a UTF-8.
// Escribe: internal/infrastructure/postgres/migrations/002_seed.sql
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type seedProduct struct {
	nombre              string
	precio              decimal.Decimal
	diasParaVencimiento int
}

func main() {
	productsPath, usersPath := "productos.csv", "usuarios.csv"
	if len(os.Args) > 1 {
		productsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		usersPath = os.Args[2]
	}

	productRows, err := readRows(productsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer productos: %v\n", err)
		os.Exit(1)
	}
	products, err := parseProducts(productRows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Productos: %v\n", err)
		os.Exit(1)
	}

	userRows, err := readRows(usersPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer usuarios: %v\n", err)
		os.Exit(1)
	}
	users := parseUsers(userRows)

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed.sql")
	err = writeSeedFile(outPath, func(w io.Writer) error {
		return writeSQL(w, products, users)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos, %d usuarios\n", outPath, len(products), len(users))
}

// writeSeedFile crea path y escribe en él con write. Ante cualquier error, incluido
// el del Close, elimina el archivo para no dejar un script a medias.
func writeSeedFile(path string, write func(io.Writer) error) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := write(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("cerrar archivo: %w", err)
	}
	return nil
}

// readRows lee todas las filas de un CSV o de la primera hoja de un XLSX.
func readRows(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("el archivo no tiene hojas")
		}
		return f.GetRows(sheets[0])
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseCSV(raw)
}

// parseCSV acepta coma o punto y coma como separador; si el contenido no es UTF-8 lo decodifica como Latin-1.
func parseCSV(raw []byte) ([][]string, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	var r io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if first, _, _ := bytes.Cut(raw, []byte("\n")); bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		cr.Comma = ';'
	}
	return cr.ReadAll()
}

// parseProducts espera columnas nombre, precio, dias_para_vencimiento.
// La primera fila es encabezado si su precio no es numérico.
func parseProducts(rows [][]string) ([]seedProduct, error) {
	var out []seedProduct
	for i, row := range rows {
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		precio, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(row[1]), ",", "."))
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("fila %d: precio %q inválido", i+1, row[1])
		}
		dias, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil || dias < 0 {
			return nil, fmt.Errorf("fila %d: días para vencimiento %q inválido", i+1, row[2])
		}
		out = append(out, seedProduct{
			nombre:              strings.TrimSpace(row[0]),
			precio:              precio,
			diasParaVencimiento: dias,
		})
	}
	return out, nil
}

// parseUsers toma la primera columna como nombre; omite el encabezado "nombre".
func parseUsers(rows [][]string) []string {
	var out []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" || (i == 0 && strings.EqualFold(name, "nombre")) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func writeSQL(w io.Writer, products []seedProduct, users []string) error {
	var b strings.Builder
	b.WriteString("-- Datos iniciales del fruver\n")
	b.WriteString("-- Generado por cmd/seed\n\n")

	if len(products) > 0 {
		b.WriteString("INSERT INTO productos (nombre, precio, dias_para_vencimiento) VALUES\n")
		for i, p := range products {
			fmt.Fprintf(&b, "  ('%s', %s, %d)", escapeSQL(p.nombre), p.precio.StringFixed(2), p.diasParaVencimiento)
			b.WriteString(sep(i, len(products)))
		}
		b.WriteString("\n")
	}

	if len(users) > 0 {
		b.WriteString("INSERT INTO usuario (nombre) VALUES\n")
		for i, u := range users {
			fmt.Fprintf(&b, "  ('%s')", escapeSQL(u))
			b.WriteString(sep(i, len(users)))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func sep(i, n int) string {
	if i < n-1 {
		return ",\n"
	}
	return ";\n"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
