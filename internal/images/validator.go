package images

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Limits applied to one upload batch.
const (
	MaxBatchSize = 10
	MaxFileBytes = 5 << 20 // 5 MiB
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// File describes one uploaded image before persistence. The validator never
// touches the payload itself, only the declared name and size.
type File struct {
	Name string
	Size int64
}

// Validate checks an upload batch and returns every violation found, in
// input order. It is not fail-fast: a single file can collect several errors,
// and the batch-size check does not suppress the per-file checks. An empty
// result means the whole batch is acceptable.
func Validate(files []File) []string {
	var errs []string

	if len(files) > MaxBatchSize {
		errs = append(errs, fmt.Sprintf("too many images: got %d, the limit is %d", len(files), MaxBatchSize))
	}

	for _, f := range files {
		if f.Size > MaxFileBytes {
			errs = append(errs, fmt.Sprintf("%s: too large, images must be at most 5 MiB", f.Name))
		}
		if !allowedExtensions[strings.ToLower(filepath.Ext(f.Name))] {
			errs = append(errs, fmt.Sprintf("%s: invalid format, allowed extensions are .jpg, .jpeg, .png, .gif, .webp", f.Name))
		}
		if f.Size == 0 {
			errs = append(errs, fmt.Sprintf("%s: empty file", f.Name))
		}
	}

	return errs
}
