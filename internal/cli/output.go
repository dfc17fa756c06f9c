package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"crmdesk/internal/crm"
)

// OutputFormatter renders command results as text or JSON.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

func newFormatter(opts *RootOptions, out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   opts.Verbose,
	}
}

// JSON encodes v with indentation to the output writer.
func (f *OutputFormatter) JSON(v interface{}) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// VerboseLog writes a progress line to stderr when verbose output is on, so
// JSON on stdout stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if f.Verbose {
		fmt.Fprintf(f.ErrWriter, format+"\n", args...)
	}
}

// Customers renders a customer listing.
func (f *OutputFormatter) Customers(customers []crm.Customer) error {
	if f.Format == "json" {
		return f.JSON(customers)
	}

	if len(customers) == 0 {
		fmt.Fprintln(f.Writer, "No customers found")
		return nil
	}

	w := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tCREATED")
	for _, c := range customers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.FullName, c.Email, c.PhoneNumber,
			c.CreatedDate.Local().Format("2006-01-02"))
	}
	return w.Flush()
}

// Customer renders a single customer in full.
func (f *OutputFormatter) Customer(c crm.Customer) error {
	if f.Format == "json" {
		return f.JSON(c)
	}

	fmt.Fprintf(f.Writer, "ID:       %s\n", c.ID)
	fmt.Fprintf(f.Writer, "Name:     %s\n", c.FullName)
	fmt.Fprintf(f.Writer, "Email:    %s\n", c.Email)
	fmt.Fprintf(f.Writer, "Phone:    %s\n", c.PhoneNumber)
	fmt.Fprintf(f.Writer, "Address:  %s\n", c.Address)
	fmt.Fprintf(f.Writer, "Created:  %s\n", c.CreatedDate.Local().Format(time.RFC1123))
	return nil
}

// FieldErrors renders client-side validation failures and returns a
// non-nil error so the command exits non-zero.
func (f *OutputFormatter) FieldErrors(errs map[string]string) error {
	if f.Format == "json" {
		_ = f.JSON(map[string]interface{}{"valid": false, "errors": errs})
	} else {
		fmt.Fprintln(f.Writer, "Validation failed:")
		for field, msg := range errs {
			fmt.Fprintf(f.Writer, "  %s: %s\n", field, msg)
		}
	}
	return fmt.Errorf("validation failed with %d error(s)", len(errs))
}
