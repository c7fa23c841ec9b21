// Package main is the chksum CLI: compute SHA-1/SHA-256 digests of files
// or stdin, optionally render them as multiformat links, and record or
// verify checksums against a local database.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/multiformats/go-multibase"
	"go.uber.org/zap"

	chksum "github.com/chksum/go-chksum"
	"github.com/chksum/go-chksum/cache"
	"github.com/chksum/go-chksum/core/link"
	"github.com/chksum/go-chksum/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("chksum", flag.ExitOnError)
	algoName := fs.String("a", "sha256", "hash algorithm (sha1 or sha256)")
	asLink := fs.Bool("link", false, "print a CIDv1 link instead of a hex digest")
	baseName := fs.String("base", "base32", "multibase encoding for -link output")
	dbPath := fs.String("db", "", "checksum database path")
	record := fs.Bool("record", false, "record digests into the database")
	verify := fs.Bool("verify", false, "verify digests against the database")
	cacheSize := fs.Int("cache", 0, "digest cache size (0 for default)")
	_ = fs.Parse(args)

	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	algo, err := chksum.ParseAlgorithm(*algoName)
	if err != nil {
		logger.Error("invalid algorithm", zap.String("name", *algoName), zap.Error(err))
		return 2
	}
	if (*record || *verify) && *dbPath == "" {
		logger.Error("-record and -verify require -db")
		return 2
	}

	var db *store.Store
	if *dbPath != "" {
		db, err = store.Open(*dbPath)
		if err != nil {
			logger.Error("could not open checksum database", zap.String("path", *dbPath), zap.Error(err))
			return 1
		}
		defer func() { _ = db.Close() }()
	}

	digests, err := cache.NewDigestCache(*cacheSize)
	if err != nil {
		logger.Error("could not create digest cache", zap.Error(err))
		return 1
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	failed := false
	for _, path := range paths {
		digest, err := digestPath(algo, path, digests)
		if err != nil {
			logger.Error("could not hash input", zap.String("path", path), zap.Error(err))
			failed = true
			continue
		}
		hexDigest := fmt.Sprintf("%x", digest)

		switch {
		case *verify:
			ok, err := db.Verify(algo, path, hexDigest)
			if err != nil {
				logger.Error("could not verify checksum", zap.String("path", path), zap.Error(err))
				failed = true
				continue
			}
			if !ok {
				fmt.Printf("%s: FAILED\n", path)
				failed = true
				continue
			}
			fmt.Printf("%s: OK\n", path)
		case *asLink:
			out, err := formatLink(algo, digest, *baseName)
			if err != nil {
				logger.Error("could not format link", zap.String("path", path), zap.Error(err))
				failed = true
				continue
			}
			fmt.Printf("%s  %s\n", out, path)
		default:
			fmt.Printf("%s  %s\n", hexDigest, path)
		}

		if *record {
			if err := db.Put(algo, path, hexDigest); err != nil {
				logger.Error("could not record checksum", zap.String("path", path), zap.Error(err))
				failed = true
			}
		}
	}

	if failed {
		return 1
	}
	return 0
}

// digestPath hashes a file (or stdin for "-"), consulting the digest cache
// for files already hashed during this run.
func digestPath(algo chksum.Algorithm, path string, digests *cache.DigestCache) ([]byte, error) {
	if path == "-" {
		return digestReader(algo, os.Stdin)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s:%s:%d:%d", algo, path, info.Size(), info.ModTime().UnixNano())
	if d, ok := digests.Get(key); ok {
		return d, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	digest, err := digestReader(algo, f)
	if err != nil {
		return nil, err
	}
	digests.Put(key, digest)
	return digest, nil
}

func digestReader(algo chksum.Algorithm, r io.Reader) ([]byte, error) {
	hasher, err := chksum.NewHasher(algo)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(hasher, r); err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}

func formatLink(algo chksum.Algorithm, digest []byte, baseName string) (string, error) {
	var enc multibase.Encoding
	switch baseName {
	case "base16":
		enc = multibase.Base16
	case "base32":
		enc = multibase.Base32
	case "base58btc":
		enc = multibase.Base58BTC
	case "base64":
		enc = multibase.Base64
	default:
		return "", fmt.Errorf("unknown multibase encoding %q", baseName)
	}
	c, err := link.ToLink(algo, digest)
	if err != nil {
		return "", err
	}
	return link.Format(c, enc)
}
