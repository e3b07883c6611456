package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	num "github.com/shabbyrobe/go-num128"
)

// Prints a 128-bit value built from four 32-bit words in all the shapes the
// num package can produce. Handy for checking what a wire capture or a C
// program should contain.

const usage = `u128 hex inspector

Usage: u128hex [-dump] [-order host|big|little] <w0> <w1> <w2> <w3>

Words are most significant first and accept any strconv base prefix (0x, 0o,
0b). The -order flag picks the byte order used for the raw byte line.`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("u128hex", flag.ContinueOnError)
	flags.Usage = func() { fmt.Fprintln(flags.Output(), usage) }
	dump := flags.Bool("dump", false, "Dump the value with spew")
	orderName := flags.String("order", "host", "Byte order for the raw bytes (host, big, little)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	order, err := parseOrder(*orderName)
	if err != nil {
		return err
	}

	words, err := parseWords(flags.Args())
	if err != nil {
		flags.Usage()
		return err
	}

	u := num.U128FromWords(words)
	if *dump {
		spew.Dump(u)
	}

	var buf [num.StringifySize]byte
	fmt.Printf("value:   %s\n", num.Stringify(buf[:], u))
	fmt.Printf("decimal: %d\n", u)
	fmt.Printf("bswap:   %s\n", u.ReverseBytes())
	fmt.Printf("htobe:   %s\n", num.HostToBig(u))
	fmt.Printf("htole:   %s\n", num.HostToLittle(u))
	fmt.Printf("betoh:   %s\n", num.BigToHost(u))
	fmt.Printf("letoh:   %s\n", num.LittleToHost(u))
	fmt.Printf("bytes:   % x (%s)\n", order.AppendU128(nil, u), order)
	return nil
}

func parseOrder(s string) (num.ByteOrder, error) {
	switch s {
	case "host":
		return num.HostOrder(), nil
	case "big":
		return num.BigEndian, nil
	case "little":
		return num.LittleEndian, nil
	default:
		return 0, fmt.Errorf("u128hex: unknown byte order %q", s)
	}
}

func parseWords(args []string) (words [4]uint32, err error) {
	if len(args) != len(words) {
		return words, fmt.Errorf("u128hex: expected %d words, found %d", len(words), len(args))
	}
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return words, fmt.Errorf("u128hex: word %d: %w", i, err)
		}
		words[i] = uint32(v)
	}
	return words, nil
}
