// Command asm80 drives the two-pass 8080/8085 assembler end to end:
// prompt for a source filename, assemble it, and write the provisional
// listing, final listing and Intel HEX object file derived from the
// source's filename stem.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/vissasm/asm80/assembler"
	"github.com/vissasm/asm80/hexfile"
	"github.com/vissasm/asm80/listing"
)

func main() {
	log.SetFlags(0)

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Source file: ")
	name, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("reading filename: %v", err)
	}
	name = strings.TrimSpace(name)

	src, err := os.ReadFile(name)
	if err != nil {
		log.Fatalf("opening source file: %v", err)
	}

	stem := name
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}

	asm := assembler.New()
	result, err := asm.Assemble(string(src))
	if err != nil {
		log.Fatalf("assembling %s: %v", name, err)
	}

	tmp, err := os.Create(stem + ".tmp")
	if err != nil {
		log.Fatalf("creating provisional listing: %v", err)
	}
	if err := listing.WriteProvisional(tmp, result.Lines); err != nil {
		tmp.Close()
		log.Fatalf("writing provisional listing: %v", err)
	}
	tmp.Close()

	lst, err := os.Create(stem + ".lst")
	if err != nil {
		log.Fatalf("creating final listing: %v", err)
	}
	if err := listing.WriteFinal(lst, result); err != nil {
		lst.Close()
		log.Fatalf("writing final listing: %v", err)
	}
	lst.Close()

	if result.Errors == 0 {
		hex, err := os.Create(stem + ".hex")
		if err != nil {
			log.Fatalf("creating HEX file: %v", err)
		}
		if err := hexfile.Write(hex, result); err != nil {
			hex.Close()
			log.Fatalf("writing HEX file: %v", err)
		}
		hex.Close()
	}

	fmt.Printf("Assembled Lines = %d, Errors = %d\n", len(result.Lines), result.Errors)
}
