// Package mapfile provides a growable, memory-mapped random-access file.
//
// A File is a file-backed byte container with a single cursor. It reads and
// writes fixed-width big-endian integers, raw byte ranges and length-prefixed
// UTF-8 strings, transparently growing and remapping the backing file as data
// is written beyond its current physical extent. Close truncates the file
// back to the logical length, reclaiming growth padding.
//
// # Quick Start
//
//	f, err := mapfile.Open("index.dat", 4096)
//	if err != nil {
//	    panic(err)
//	}
//	defer f.Close()
//
//	if err := f.PutInt32(0, 42); err != nil { ... }
//	if err := f.PutString(4, "hello"); err != nil { ... }
//
//	v, err := f.GetInt32(0)
//	s, err := f.GetString(4)
//
// # Sizes
//
// A File tracks two lengths. The real size is the physically allocated
// length of the backing file, grown geometrically ahead of demand. The
// logical length (Len) is the high-water mark of data actually written or
// seeked to, and never exceeds the real size. Only the logical length
// survives Close.
//
// # Thread Safety
//
// A File is not safe for concurrent use. It assumes a single logical
// sequence of operations per open handle; callers needing concurrent access
// must serialize externally. Independent handles over different files are
// fully isolated.
package mapfile
