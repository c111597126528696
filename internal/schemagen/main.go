// Command schemagen writes the JSON schema of the mkprefix configuration.
//
// It is run by go generate from api/v1beta1/configs.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/macropower/mkprefix/api/v1beta1/configs"
)

const (
	modulePath = "github.com/macropower/mkprefix"
	schemaID   = "https://github.com/macropower/mkprefix/api/v1beta1/configs/config"
)

var (
	outFile = flag.String("o", "schema.json", "Output file for the generated schema")
	rootDir = flag.String("root", "../../..", "Module root, used to read field comments")
)

func main() {
	flag.Parse()

	out, err := filepath.Abs(*outFile)
	if err != nil {
		log.Fatalf("resolve output path: %v", err)
	}

	err = os.Chdir(*rootDir)
	if err != nil {
		log.Fatalf("change to module root: %v", err)
	}

	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	err = r.AddGoComments(modulePath, "./api")
	if err != nil {
		log.Fatalf("read go comments: %v", err)
	}

	s := r.Reflect(configs.New())
	s.ID = schemaID
	s.Title = "mkprefix configuration"

	jsData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		log.Fatalf("marshal JSON schema: %v", err)
	}

	err = os.WriteFile(out, append(jsData, '\n'), 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
