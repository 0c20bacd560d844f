// Binary encoding for result blobs.
//
// A result maps keyword -> file paths. Run metadata is small and stays JSON;
// the result is the dominant blob and uses length-prefixed lists.
//
// Format (little-endian):
//
//	keywordCount: uint32
//	per keyword:
//	  keyLen:    uint16
//	  key:       [keyLen]byte
//	  fileCount: uint32
//	  files:     [fileCount]× (pathLen:uint32 + path:[pathLen]byte)
package bbolt

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// encodeResult encodes a result map to compact binary format. Keywords are
// sorted for deterministic output; file order within a keyword is kept.
func encodeResult(result map[string][]string) ([]byte, error) {
	totalSize := 4
	for key, files := range result {
		totalSize += 2 + len(key) + 4
		for _, f := range files {
			totalSize += 4 + len(f)
		}
	}

	buf := make([]byte, totalSize)
	offset := 0

	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(keys)))
	offset += 4

	for _, key := range keys {
		files := result[key]

		if len(key) > 65535 {
			return nil, fmt.Errorf("keyword too long: %d bytes", len(key))
		}
		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(key)))
		offset += 2
		offset += copy(buf[offset:], key)

		binary.LittleEndian.PutUint32(buf[offset:], uint32(len(files)))
		offset += 4
		for _, f := range files {
			binary.LittleEndian.PutUint32(buf[offset:], uint32(len(f)))
			offset += 4
			offset += copy(buf[offset:], f)
		}
	}

	return buf, nil
}

// decodeResult decodes a binary result back to a map.
// Every read is bounds-checked to avoid panics on corrupt data.
func decodeResult(data []byte) (map[string][]string, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("result too short: %d bytes", len(data))
	}

	offset := 0
	count := binary.LittleEndian.Uint32(data[offset:])
	offset += 4

	result := make(map[string][]string)

	for i := uint32(0); i < count; i++ {
		if offset+2 > len(data) {
			return nil, fmt.Errorf("truncated at keyword %d length (offset %d)", i, offset)
		}
		keyLen := int(binary.LittleEndian.Uint16(data[offset:]))
		offset += 2

		if offset+keyLen > len(data) {
			return nil, fmt.Errorf("truncated at keyword %d (offset %d, need %d)", i, offset, keyLen)
		}
		key := string(data[offset : offset+keyLen])
		offset += keyLen

		if offset+4 > len(data) {
			return nil, fmt.Errorf("truncated at keyword %d file count (offset %d)", i, offset)
		}
		fileCount := binary.LittleEndian.Uint32(data[offset:])
		offset += 4

		// Each file needs at least its 4-byte length prefix.
		if uint64(fileCount)*4 > uint64(len(data)-offset) {
			return nil, fmt.Errorf("truncated at keyword %d files (offset %d, count %d)", i, offset, fileCount)
		}
		files := make([]string, 0, fileCount)
		for j := uint32(0); j < fileCount; j++ {
			if offset+4 > len(data) {
				return nil, fmt.Errorf("truncated at keyword %d file %d length (offset %d)", i, j, offset)
			}
			pathLen := int(binary.LittleEndian.Uint32(data[offset:]))
			offset += 4
			if pathLen < 0 || offset+pathLen > len(data) {
				return nil, fmt.Errorf("truncated at keyword %d file %d (offset %d, need %d)", i, j, offset, pathLen)
			}
			files = append(files, string(data[offset:offset+pathLen]))
			offset += pathLen
		}

		result[key] = files
	}

	if offset != len(data) {
		return nil, fmt.Errorf("trailing bytes after result: %d", len(data)-offset)
	}
	return result, nil
}
