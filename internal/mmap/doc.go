// Package mmap provides read-write memory-mapped access to a growable file.
//
// # Overview
//
// A Mapping owns the association between one physical file and at most one
// active memory mapping over its full extent. Resize invalidates the current
// byte view and establishes a fresh one; callers must re-fetch the view via
// Bytes after any operation that can change capacity.
//
// # Usage
//
//	m, err := mmap.Open("store.bin", 0o644)
//	if err != nil { ... }
//	defer m.Close(0)
//
//	// Grow until offset 1024 is backed by the mapping.
//	if err := m.EnsureCapacity(1024); err != nil { ... }
//
//	data, err := m.Bytes()
//	if err != nil { ... }
//	data[1024] = 0x2a
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with PROT_READ|PROT_WRITE and
//     MAP_SHARED, msync(2) for Flush, madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile with PAGE_READWRITE,
//     FlushViewOfFile for Flush (madvise is a no-op)
//
// # Thread Safety
//
// A Mapping is not safe for concurrent use. It assumes a single owner
// issuing one operation at a time; callers needing concurrency must
// serialize externally.
package mmap
