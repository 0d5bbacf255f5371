package cmd

import (
	"io"

	"github.com/goccy/go-yaml"
)

// runSummary is the machine-readable outcome printed with --summary.
type runSummary struct {
	Family              string `yaml:"family"`
	Divergences         int    `yaml:"divergences"`
	MissingInSalesforce int    `yaml:"missing_in_salesforce"`
	MissingInLocavia    int    `yaml:"missing_in_locavia"`
	Removals            int    `yaml:"removals,omitempty"`
	Report              string `yaml:"report,omitempty"`
}

func printSummary(w io.Writer, s runSummary) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
