package pdfgen

import (
	"inventory-system/pkg/config"
)

const (
	defaultCompanyName = "IT Inventory"
	defaultFooterNote  = "Generated by the inventory system"
)

// Branding is what gets stamped on every generated acta. Zero values fall
// back to neutral defaults so a bare deployment still produces usable
// documents.
type Branding struct {
	CompanyName string
	LogoPath    string
	FooterNote  string
}

func BrandingFromConfig(cfg config.BrandingConfig) Branding {
	b := Branding{
		CompanyName: cfg.CompanyName,
		LogoPath:    cfg.LogoPath,
		FooterNote:  cfg.FooterNote,
	}
	if b.CompanyName == "" {
		b.CompanyName = defaultCompanyName
	}
	if b.FooterNote == "" {
		b.FooterNote = defaultFooterNote
	}
	return b
}
