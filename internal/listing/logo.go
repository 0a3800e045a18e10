package listing

import (
	"strings"

	"github.com/jobdeck/jobdeck/pkg/models"
)

// DefaultLogoPath is the fixed fallback asset used when a job carries no
// logo payload.
const DefaultLogoPath = "assets/images/default-company-logo.png"

// CompanyLogoURL derives the display URL for a job's company logo: a data
// URI when the server returned logo bytes, else the fallback path. The
// result is never persisted back.
func CompanyLogoURL(job models.Job) string {
	if job.LogoBase64 != "" && job.LogoContentType != "" {
		return "data:" + job.LogoContentType + ";base64," + job.LogoBase64
	}
	return DefaultLogoPath
}

// HasCustomLogo reports whether the job carries a usable logo payload.
func HasCustomLogo(job models.Job) bool {
	return job.LogoBase64 != "" && job.LogoContentType != ""
}

// CompanyInitials builds the placeholder initials, e.g. "Acme Business"
// becomes "AB".
func CompanyInitials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	return b.String()
}
