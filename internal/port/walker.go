package port

type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path    string
	ModTime int64
	Size    int64
}

// TextSource supplies decoded text for a path.
type TextSource interface {
	ReadText(path string) (string, error)
}
