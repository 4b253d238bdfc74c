package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	yamlrec "github.com/reoring/yamlrec"
	"github.com/reoring/yamlrec/source"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "lint":
		lintCmd(os.Args[2:])
	case "dump":
		dumpCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "yamlrec CLI\n\nUsage:\n  yamlrec lint -f doc.yaml\n  yamlrec dump -f doc.yaml [-json]\n\nNotes:\n  - lint checks that the document decodes to a tree the engine accepts.\n  - dump prints the normalized tree (YAML by default).")
}

func lintCmd(args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	var file string
	fs.StringVar(&file, "f", "", "document to lint (.yaml/.yml/.json)")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	docs, err := loadDocuments(file)
	if err != nil {
		fatalf("read: %v", err)
	}
	bad := 0
	for i, doc := range docs {
		if iss := yamlrec.CheckTree(doc); len(iss) > 0 {
			bad++
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "doc %d: %s at %s: %s\n", i, it.Code, it.Path, it.Message)
			}
		}
	}
	if bad > 0 {
		os.Exit(1)
	}
	fmt.Printf("ok: %d document(s)\n", len(docs))
}

func dumpCmd(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var file string
	var asJSON bool
	fs.StringVar(&file, "f", "", "document to dump (.yaml/.yml/.json)")
	fs.BoolVar(&asJSON, "json", false, "emit JSON instead of YAML")
	_ = fs.Parse(args)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	docs, err := loadDocuments(file)
	if err != nil {
		fatalf("read: %v", err)
	}
	for i, doc := range docs {
		if i > 0 && !asJSON {
			fmt.Println("---")
		}
		if asJSON {
			out, err := j.MarshalIndent(doc, "", "  ")
			if err != nil {
				fatalf("encode: %v", err)
			}
			fmt.Println(string(out))
			continue
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			fatalf("encode: %v", err)
		}
		fmt.Print(string(out))
	}
}

func loadDocuments(file string) ([]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(file), ".json") {
		doc, err := source.JSON(data)
		if err != nil {
			return nil, err
		}
		return []any{doc}, nil
	}
	return source.YAMLDocuments(data)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
