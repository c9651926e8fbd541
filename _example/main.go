package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hupe1980/mapfile"
)

func main() {
	dir, err := os.MkdirTemp("", "mapfile_example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "data.bin")

	f, err := mapfile.Open(path, 0)
	if err != nil {
		log.Fatal(err)
	}

	if err := f.PutInt32(0, 0x01020304); err != nil {
		log.Fatal(err)
	}
	if err := f.PutString(4, "hello mapfile"); err != nil {
		log.Fatal(err)
	}

	v, err := f.GetInt32(0)
	if err != nil {
		log.Fatal(err)
	}
	s, err := f.GetString(4)
	if err != nil {
		log.Fatal(err)
	}

	fi, _ := os.Stat(path)
	fmt.Println("int:", v)
	fmt.Println("string:", s)
	fmt.Println("logical length:", f.Len())
	fmt.Println("physical length while open:", fi.Size())

	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	fi, _ = os.Stat(path)
	fmt.Println("physical length after close:", fi.Size())
}
