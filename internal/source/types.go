package source

type (
	// FileID identifies a file version within a FileSet.
	FileID uint32
	// FileFlags records how the content was obtained.
	FileFlags uint8
)

const (
	// FileVirtual marks content that was not read from disk.
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is a loaded source file together with its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
