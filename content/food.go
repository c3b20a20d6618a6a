package content

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/engine"
)

// LoadFood reads a preset food file; see ParseFood for the format
func LoadFood(path string) ([]engine.Coord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open food file: %w", err)
	}
	defer f.Close()

	coords, err := ParseFood(f)
	if err != nil {
		return nil, fmt.Errorf("read food file %s: %w", path, err)
	}
	log.Printf("Loaded %d preset food cells from %s", len(coords), path)
	return coords, nil
}

// ParseFood reads whitespace-separated integer pairs "row col" in order
// A token that is not a non-negative integer drops the entry it belongs to,
// including an already read row value; a trailing unpaired value is ignored
func ParseFood(r io.Reader) ([]engine.Coord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var (
		coords  []engine.Coord
		pending []int
		token   int
	)

	for scanner.Scan() {
		token++
		word := scanner.Text()

		n, err := strconv.Atoi(word)
		if err != nil || n < 0 {
			if len(pending) > 0 {
				log.Printf("Skipping malformed food entry at token %d: %d %q", token, pending[0], word)
				pending = pending[:0]
			} else {
				log.Printf("Skipping malformed food token %d: %q", token, word)
			}
			continue
		}

		pending = append(pending, n)
		if len(pending) == 2 {
			coords = append(coords, engine.At(pending[0], pending[1]))
			pending = pending[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return coords, err
	}

	if len(pending) > 0 {
		log.Printf("Ignoring unpaired trailing food value %d", pending[0])
	}
	return coords, nil
}
