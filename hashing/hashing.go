// Package hashing computes the content digests used to key the
// provisioning cache and to verify downloaded archives.
//
// There's no hashing library anywhere in the example corpus — every repo
// that needs a digest reaches for crypto/sha256 or crypto/sha512 directly
// — so this package stays on the standard library by necessity rather
// than choice.
package hashing

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Sha256File hashes the raw bytes of a single file. Used to verify
// downloaded archives against the checksum an upstream provisioner
// advertises.
func Sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashDirectory computes a single digest over an entire installation
// tree, so two runtimes extracted from the same archive on different
// machines (or unpacked into differently-named directories) hash
// identically. It walks entries in sorted order and folds each file's
// length in as an 8-byte little-endian prefix before its contents, so
// that an empty file is distinguishable from a missing one and content
// shifts can't accidentally collide across a directory boundary.
func HashDirectory(root string) (string, error) {
	h := sha512.New()
	if err := hashPath(h, root); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashPath(h hash.Hash, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return hashDir(h, path)
	}

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(info.Size()))
	h.Write(lenBuf[:])

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(h, f)
	return err
}

func hashDir(h hash.Hash, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)

	for _, name := range names {
		if err := hashPath(h, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
