// The wordfreq command counts the words in its input and prints
// the most frequent ones.
//
// Usage:
//
//	wordfreq [flags] [file...]
//
// With no files, it reads standard input.
package main

import (
	"bufio"
	"cmp"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/rogpeppe/chainmap"
	"github.com/rogpeppe/chainmap/strhash"
)

var (
	bucketsFlag = flag.Int("buckets", 1024, "number of hash table buckets")
	hashFlag    = flag.String("hash", "additive", "hash function: "+strings.Join(strhash.Names(), ", "))
	topFlag     = flag.Int("top", 10, "print the `n` most frequent words (0 for all)")
	stopFlag    = flag.String("stop", "", "comma-separated words to leave out of the results")
	statsFlag   = flag.Bool("stats", false, "print hash table statistics")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wordfreq: ")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: wordfreq [flags] [file...]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if err := run(os.Stdout, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, files []string) error {
	if *topFlag < 0 {
		return fmt.Errorf("invalid -top value %d", *topFlag)
	}
	hash, err := strhash.Lookup(*hashFlag)
	if err != nil {
		return err
	}
	t, err := chainmap.New[int](*bucketsFlag, chainmap.WithHash(hash))
	if err != nil {
		return err
	}
	defer t.Destroy(nil)

	if len(files) == 0 {
		if err := count(t, os.Stdin); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	for _, name := range files {
		if err := countFile(t, name); err != nil {
			return err
		}
	}
	removeStopWords(t, *stopFlag)
	for _, wc := range top(t, *topFlag) {
		fmt.Fprintf(w, "%7d %s\n", wc.count, wc.word)
	}
	if *statsFlag {
		fmt.Fprintf(w, "%v\n", t.Stats())
	}
	return nil
}

func countFile(t *chainmap.Table[int], name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := count(t, f); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

// count adds one to the count of each word read from r.
// Lines may be of any length.
func count(t *chainmap.Table[int], r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		for _, word := range words(line) {
			t.Insert(word, 1, chainmap.Add[int])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// words splits line into lower-cased words.
func words(line string) []string {
	ws := strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return ws
}

func removeStopWords(t *chainmap.Table[int], stop string) {
	if stop == "" {
		return
	}
	for _, w := range strings.Split(stop, ",") {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			t.Remove(w, nil)
		}
	}
}

type wordCount struct {
	word  string
	count int
}

// top returns the n most frequent words in t, most frequent first,
// breaking ties alphabetically. If n is zero or negative, all words
// are returned.
func top(t *chainmap.Table[int], n int) []wordCount {
	wcs := make([]wordCount, 0, t.Len())
	t.Iterate(func(word string, count int) {
		wcs = append(wcs, wordCount{word, count})
	})
	slices.SortFunc(wcs, func(a, b wordCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.word, b.word)
	})
	if n > 0 && n < len(wcs) {
		wcs = wcs[:n]
	}
	return wcs
}
