package ledger

import (
	"crypto/rand"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
)

var unsafeNameChars = regexp.MustCompile(`[:\\/]`)

// CleanFileName replaces path separators and colons so the name is safe to display and store
func CleanFileName(name string) string {
	name = strings.TrimSpace(unsafeNameChars.ReplaceAllString(name, "-"))
	if name == "" {
		return "document"
	}
	return name
}

func newObjectID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// splitName returns the slugged base name and the lowercase extension without dot
func splitName(name string) (string, string) {
	name = CleanFileName(name)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	base := slug.Make(strings.TrimSuffix(name, filepath.Ext(name)))
	if base == "" {
		base = "file"
	}
	if ext == "" {
		ext = "bin"
	}
	return base, ext
}

// InvoiceObjectKey is the storage key of a file attached during invoice creation
func InvoiceObjectKey(fileName string) string {
	base, ext := splitName(fileName)
	return "invoices/" + newObjectID() + "_" + base + "." + ext
}

// DocumentObjectKey is the storage key of a file in a supplier's document pool
func DocumentObjectKey(supplierID, fileName string) string {
	base, ext := splitName(fileName)
	folder := slug.Make(supplierID)
	if folder == "" {
		folder = "unknown"
	}
	return folder + "/" + newObjectID() + "_" + base + "." + ext
}
