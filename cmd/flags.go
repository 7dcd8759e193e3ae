package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pkgstrap/pkgstrap/internal/config"
)

// licenseValue is a pflag.Value that rejects unsupported license
// identifiers at parse time, before any scaffolding starts.
type licenseValue string

var _ pflag.Value = (*licenseValue)(nil)

func (v *licenseValue) String() string { return string(*v) }

func (v *licenseValue) Set(s string) error {
	if !config.IsSupportedLicense(s) {
		return fmt.Errorf("unsupported license %q (supported: %s)",
			s, strings.Join(config.SupportedLicenses(), ", "))
	}
	*v = licenseValue(s)
	return nil
}

func (v *licenseValue) Type() string { return "license" }
