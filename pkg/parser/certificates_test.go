package parser

import (
	"testing"

	"github.com/coolbeans/vitae/pkg/resume"
)

func TestCertificatesParser_NameIssuerDateLink(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewCertificatesParser().Parse([]string{
		"AWS Certified Solutions Architect - Amazon Web Services",
		"Jan 2023",
		"https://cred.example.com/abc",
	}, doc)

	if len(doc.Certificates) != 1 {
		t.Fatalf("got %d certificates, want 1: %+v", len(doc.Certificates), doc.Certificates)
	}
	cert := doc.Certificates[0]
	if cert.CertificateName != "AWS Certified Solutions Architect" {
		t.Errorf("CertificateName = %q", cert.CertificateName)
	}
	if cert.InstituteName != "Amazon Web Services" {
		t.Errorf("InstituteName = %q", cert.InstituteName)
	}
	if cert.StartDate != "Jan 2023" || cert.EndDate != "" {
		t.Errorf("dates = (%q, %q)", cert.StartDate, cert.EndDate)
	}
	if cert.Link != "https://cred.example.com/abc" {
		t.Errorf("Link = %q", cert.Link)
	}
}

func TestCertificatesParser_IssuedByLine(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewCertificatesParser().Parse([]string{
		"Machine Learning Specialization",
		"Issued by Coursera",
	}, doc)

	if len(doc.Certificates) != 1 {
		t.Fatalf("got %d certificates, want 1: %+v", len(doc.Certificates), doc.Certificates)
	}
	cert := doc.Certificates[0]
	if cert.CertificateName != "Machine Learning Specialization" {
		t.Errorf("CertificateName = %q", cert.CertificateName)
	}
	if cert.InstituteName != "Coursera" {
		t.Errorf("InstituteName = %q", cert.InstituteName)
	}
}

func TestCertificatesParser_SecondNameStartsNewEntry(t *testing.T) {
	doc := resume.NewParsedDocument()
	NewCertificatesParser().Parse([]string{
		"AWS Certified Solutions Architect - Amazon Web Services",
		"Google Data Analytics, Coursera",
	}, doc)

	if len(doc.Certificates) != 2 {
		t.Fatalf("got %d certificates, want 2: %+v", len(doc.Certificates), doc.Certificates)
	}
	second := doc.Certificates[1]
	if second.CertificateName != "Google Data Analytics" {
		t.Errorf("second CertificateName = %q", second.CertificateName)
	}
	if second.InstituteName != "Coursera" {
		t.Errorf("second InstituteName = %q", second.InstituteName)
	}
}

func TestExtractIssuer(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"Issued by Coursera", "Coursera"},
		{"Offered by: Stanford University", "Stanford University"},
		{"AWS Certified Solutions Architect", ""},
		{"Completed twelve modules covering cloud architecture on the Google platform over two years", ""},
		{"No vendor mentioned here", ""},
	}
	for _, tt := range tests {
		if got := extractIssuer(tt.line); got != tt.want {
			t.Errorf("extractIssuer(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
