package port

// ScanResult partitions the immediate children of a directory into the two
// recognized media classes. Both slices hold full paths in sorted order.
type ScanResult struct {
	Videos []string
	Images []string
}

type FolderScanner interface {
	Scan(dir string) (*ScanResult, error)
}
