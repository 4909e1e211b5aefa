// seed_bom genera un script SQL para poblar materiales, productos y BOM a partir
// de un catálogo CSV (UTF-8 o ISO-8859-1, separado por coma o punto y coma).
//
// Formato, una fila por registro:
//
//	material;HARINA;Harina de trigo;kg
//	producto;PAN;Pan tajado
//	bom;PAN;HARINA;2.5
//
// Uso: go run ./cmd/seed_bom [catalogo.csv] [salida.sql]
// Por defecto lee catalogo.csv y escribe
// internal/infrastructure/postgres/migrations/002_seed_catalogo.sql
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type material struct{ sku, name, unit string }

type product struct{ sku, name string }

type bomLine struct {
	productSKU, materialSKU string
	qty                     decimal.Decimal
}

type catalog struct {
	materials []material
	products  []product
	bom       []bomLine
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	cat, err := parseCatalog(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Procesar catálogo: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalogo.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d materiales, %d productos, %d líneas BOM\n",
		outPath, len(cat.materials), len(cat.products), len(cat.bom))
}

// decodeCatalog devuelve el contenido en UTF-8. Si no es UTF-8 válido se asume
// ISO-8859-1 (exportaciones de Excel en Windows).
func decodeCatalog(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

func parseCatalog(raw []byte) (*catalog, error) {
	r := csv.NewReader(decodeCatalog(raw))
	r.Comma = ','
	if firstLine, _, _ := bytes.Cut(raw, []byte("\n")); bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		r.Comma = ';'
	}
	r.FieldsPerRecord = -1
	r.Comment = '#'
	r.TrimLeadingSpace = true

	cat := &catalog{}
	materials := map[string]bool{}
	products := map[string]bool{}
	line := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		switch strings.ToLower(rec[0]) {
		case "tipo":
			// cabecera
		case "material":
			if len(rec) < 4 || rec[1] == "" {
				return nil, fmt.Errorf("línea %d: material requiere sku, nombre y unidad", line)
			}
			materials[rec[1]] = true
			cat.materials = append(cat.materials, material{sku: rec[1], name: rec[2], unit: rec[3]})
		case "producto":
			if len(rec) < 3 || rec[1] == "" {
				return nil, fmt.Errorf("línea %d: producto requiere sku y nombre", line)
			}
			products[rec[1]] = true
			cat.products = append(cat.products, product{sku: rec[1], name: rec[2]})
		case "bom":
			if len(rec) < 4 {
				return nil, fmt.Errorf("línea %d: bom requiere producto, material y cantidad", line)
			}
			qty, err := decimal.NewFromString(strings.ReplaceAll(rec[3], ",", "."))
			if err != nil {
				return nil, fmt.Errorf("línea %d: cantidad inválida %q", line, rec[3])
			}
			cat.bom = append(cat.bom, bomLine{productSKU: rec[1], materialSKU: rec[2], qty: qty})
		default:
			return nil, fmt.Errorf("línea %d: tipo desconocido %q", line, rec[0])
		}
	}

	for _, b := range cat.bom {
		if !products[b.productSKU] {
			return nil, fmt.Errorf("bom: producto %s no declarado", b.productSKU)
		}
		if !materials[b.materialSKU] {
			return nil, fmt.Errorf("bom: material %s no declarado", b.materialSKU)
		}
	}
	return cat, nil
}

func writeSQL(w io.Writer, cat *catalog) error {
	var b strings.Builder
	b.WriteString("-- +goose Up\n")
	b.WriteString("-- Catálogo de materiales, productos y BOM\n")
	b.WriteString("-- Generado por cmd/seed_bom\n\n")

	if len(cat.materials) > 0 {
		b.WriteString("-- 1. Materiales\n")
		b.WriteString("INSERT INTO materials (sku, name, unidad) VALUES\n")
		for i, m := range cat.materials {
			fmt.Fprintf(&b, "  ('%s', '%s', '%s')", escapeSQL(m.sku), escapeSQL(m.name), escapeSQL(m.unit))
			b.WriteString(sep(i, len(cat.materials)))
		}
		b.WriteString("ON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name, unidad = EXCLUDED.unidad;\n\n")
	}

	if len(cat.products) > 0 {
		b.WriteString("-- 2. Productos\n")
		b.WriteString("INSERT INTO products (sku, name) VALUES\n")
		for i, p := range cat.products {
			fmt.Fprintf(&b, "  ('%s', '%s')", escapeSQL(p.sku), escapeSQL(p.name))
			b.WriteString(sep(i, len(cat.products)))
		}
		b.WriteString("ON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name;\n\n")
	}

	if len(cat.bom) > 0 {
		b.WriteString("-- 3. BOM (cantidad de material por unidad producida)\n")
		for _, l := range cat.bom {
			b.WriteString("INSERT INTO bom (producto_id, material_id, qty_por_unidad)\n")
			fmt.Fprintf(&b, "SELECT p.id, m.id, %s FROM products p, materials m WHERE p.sku = '%s' AND m.sku = '%s'\n",
				l.qty.String(), escapeSQL(l.productSKU), escapeSQL(l.materialSKU))
			b.WriteString("ON CONFLICT (producto_id, material_id) DO UPDATE SET qty_por_unidad = EXCLUDED.qty_por_unidad;\n")
		}
	}

	b.WriteString("\n-- +goose Down\n-- el catálogo no se revierte\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func sep(i, n int) string {
	if i < n-1 {
		return ",\n"
	}
	return "\n"
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
