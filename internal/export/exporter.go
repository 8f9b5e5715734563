package export

import (
	"path/filepath"
	"time"

	"github.com/nominapp/nominacli/internal/filex"
)

// Exporter writes payroll artifacts into a target directory. The directory is
// created on first use; every method returns the absolute path of the file it
// wrote.
type Exporter struct {
	dir   string
	org   string
	money *MoneyFormatter
	now   func() time.Time
}

// NewExporter builds an Exporter. org appears in document headers; locale
// drives money formatting.
func NewExporter(dir, org, locale string) *Exporter {
	return &Exporter{
		dir:   dir,
		org:   org,
		money: NewMoneyFormatter(locale),
		now:   time.Now,
	}
}

func (e *Exporter) targetPath(name string) (string, error) {
	abs, err := filex.EnsureDir(e.dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(abs, name), nil
}
