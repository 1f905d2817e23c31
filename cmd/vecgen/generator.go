package main

import (
	"bytes"
	"embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// Generator renders the interface files of package gvec and the vector
// types of package vec below Root.
type Generator struct {
	Root    string
	Check   bool // Report stale files instead of writing them.
	Verbose bool
}

// outputFile is one generated file. Path is relative to the module root.
type outputFile struct {
	Path     string
	Template string
	Data     any
}

type vecFile struct {
	Imports string
	Types   []vecType
}

type bvecFile struct {
	Types []bvecType
}

type ifaceFile struct {
	Imports string
	Decls   []ifaceDecl
}

type typedFile struct {
	Imports string
	Decls   []typedDecl
}

type gbvecDecl struct {
	Name  string
	Dim   int
	Args  string
	Impls []string
}

type gbvecFile struct {
	Imports string
	Impls   []string
	Decls   []gbvecDecl
}

// plan returns every file the generator produces, vec package first.
func plan() []outputFile {
	var files []outputFile
	for _, k := range scalarKinds {
		files = append(files, outputFile{
			Path:     filepath.Join("vec", k.File),
			Template: "vec.go.tmpl",
			Data: vecFile{
				Imports: vecImports(k),
				Types:   lo.Map(dims, func(n int, _ int) vecType { return newVecType(k, n) }),
			},
		})
	}
	files = append(files, outputFile{
		Path:     filepath.Join("vec", "bvec_gen.go"),
		Template: "bvec.go.tmpl",
		Data:     bvecFile{Types: lo.Map(dims, func(n int, _ int) bvecType { return newBVecType(n) })},
	})

	vecPkg := modulePath + "/vec"
	for _, t := range tiers {
		std := lo.Ternary(t.Name == "GVec", []string{"fmt"}, nil)
		files = append(files, outputFile{
			Path:     t.File,
			Template: "iface.go.tmpl",
			Data: ifaceFile{
				Imports: importBlock(std, []string{vecPkg}),
				Decls: lo.Map(append([]int{0}, dims...), func(n int, _ int) ifaceDecl {
					return newIfaceDecl(t, n)
				}),
			},
		})
	}
	files = append(files, outputFile{
		Path:     "typed_gen.go",
		Template: "typed.go.tmpl",
		Data: typedFile{
			Imports: importBlock(nil, []string{vecPkg}),
			Decls:   lo.Map(scalarKinds, func(k scalarKind, _ int) typedDecl { return newTypedDecl(k) }),
		},
	})
	gb := gbvecFile{Imports: importBlock([]string{"fmt"}, []string{vecPkg})}
	for _, n := range dims {
		b := newBVecType(n)
		gb.Impls = append(gb.Impls, fmt.Sprintf("GBVec[vec.%s] = vec.%s{}", b.Name, b.Name))
		gb.Decls = append(gb.Decls, gbvecDecl{
			Name:  "GBVec" + strconv.Itoa(n),
			Dim:   n,
			Args:  b.Args,
			Impls: []string{fmt.Sprintf("GBVec%d[vec.%s] = vec.%s{}", n, b.Name, b.Name)},
		})
	}
	files = append(files, outputFile{Path: "bvec_gen.go", Template: "gbvec.go.tmpl", Data: gb})
	return files
}

func vecImports(k scalarKind) string {
	ext := []string{modulePath + "/internal/scalar"}
	switch k.Type {
	case "float32":
		ext = append(ext, "github.com/chewxy/math32", "github.com/soypat/glgl/math/ms3")
	case "float64":
		ext = append(ext, modulePath+"/internal/d2", modulePath+"/internal/d3", "gonum.org/v1/gonum/spatial/r2", "gonum.org/v1/gonum/spatial/r3")
	}
	return importBlock([]string{"fmt", "math"}, ext)
}

// importBlock formats an import declaration with the standard library
// group first.
func importBlock(std, ext []string) string {
	groups := lo.Filter([][]string{slices.Sorted(slices.Values(std)), slices.Sorted(slices.Values(ext))}, func(g []string, _ int) bool {
		return len(g) > 0
	})
	if len(groups) == 1 && len(groups[0]) == 1 {
		return "import " + strconv.Quote(groups[0][0])
	}
	var b strings.Builder
	b.WriteString("import (\n")
	for i, g := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, path := range g {
			fmt.Fprintf(&b, "\t%q\n", path)
		}
	}
	b.WriteString(")")
	return b.String()
}

// render executes the template of f and formats the result.
func render(f outputFile) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, f.Template, f.Data); err != nil {
		return nil, fmt.Errorf("executing %s for %s: %w", f.Template, f.Path, err)
	}
	src, err := imports.Process(f.Path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", f.Path, err)
	}
	return src, nil
}

// Run renders every planned file and writes it below g.Root. With g.Check
// set nothing is written and Run fails if any file on disk differs.
func (g *Generator) Run() error {
	var stale []string
	for _, f := range plan() {
		src, err := render(f)
		if err != nil {
			return err
		}
		path := filepath.Join(g.Root, f.Path)
		if g.Check {
			old, err := os.ReadFile(path)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			if !bytes.Equal(old, src) {
				stale = append(stale, f.Path)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return fmt.Errorf("writing generated file: %w", err)
		}
		if g.Verbose {
			log.Printf("wrote %s (%d bytes)", path, len(src))
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("%d generated files are out of date, run go generate: %s", len(stale), strings.Join(stale, ", "))
	}
	return nil
}
