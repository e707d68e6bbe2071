package domain

import "testing"

func TestUpload_HasPDFName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"plain pdf", "report.pdf", true},
		{"path prefix", "dir/report.pdf", true},
		{"docx", "report.docx", false},
		{"upper case suffix", "REPORT.PDF", false},
		{"suffix in middle", "report.pdf.zip", false},
		{"bare suffix", ".pdf", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &Upload{Filename: tt.filename}
			if got := u.HasPDFName(); got != tt.want {
				t.Fatalf("HasPDFName(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}
