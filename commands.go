package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/adammathes/webattr/pkg/attr"
	"github.com/adammathes/webattr/pkg/catalog"
	"github.com/adammathes/webattr/pkg/check"
	"github.com/adammathes/webattr/pkg/normalize"
	"github.com/adammathes/webattr/pkg/report"
	"github.com/adammathes/webattr/pkg/webns"
)

func newResolveCmd(a *app) *cobra.Command {
	var byProperty bool
	cmd := &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Resolve attribute names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.namespace(webns.HTML5)
			if err != nil {
				return err
			}
			ns := s.Namespace()

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, name := range args {
				var h webns.Attribute
				if byProperty {
					h, err = ns.ResolveByPropertyName(name)
				} else {
					h, err = ns.ResolveByLocalName(name)
				}
				if err != nil {
					fmt.Fprintf(a.stderr, "%s: %v\n", name, err)
					a.fail(exitFindings)
					continue
				}
				a.log.WithField("name", name).Debug("Resolved attribute")
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", h.LocalName(), h.Property(), h.Type(), kindOf(h))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&byProperty, "property", false, "Treat names as property names")
	return cmd
}

func kindOf(h webns.Attribute) string {
	if h.IsStatic() {
		return "static"
	}
	return "dynamic"
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse NAME [VALUE]",
		Short: "Parse an attribute value",
		Long:  "Resolve NAME, then parse VALUE with its type. Without VALUE the attribute is treated as bare.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.namespace(webns.HTML5)
			if err != nil {
				return err
			}
			h, err := s.Namespace().ResolveByLocalName(args[0])
			if err != nil {
				fmt.Fprintln(a.stderr, err)
				a.fail(exitFindings)
				return nil
			}

			raw, present := "", len(args) == 2
			if present {
				raw = args[1]
			}
			v, err := h.Parse(raw, present)
			if err != nil {
				fmt.Fprintf(a.stderr, "%s: %v\n", h.LocalName(), err)
				a.fail(exitFindings)
				return nil
			}

			fmt.Fprintf(a.stdout, "attribute:  %s (%s) %s\n", h.LocalName(), h.Property(), h.Type())
			fmt.Fprintf(a.stdout, "value:      %s\n", v)
			fmt.Fprintf(a.stdout, "serialized: %s\n", h.Serialize(v))
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var (
		allFlags string
		anyFlags string
		prefix   string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List static attributes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.namespace(0)
			if err != nil {
				return err
			}
			format, err := report.ParseFormat(a.v.GetString("output"))
			if err != nil {
				return err
			}
			q := catalog.Query{Namespace: s, Prefix: prefix}
			if q.AllFlags, err = attr.ParseType(allFlags); err != nil {
				return err
			}
			if q.AnyFlags, err = attr.ParseType(anyFlags); err != nil {
				return err
			}

			cat, err := catalog.New()
			if err != nil {
				return err
			}
			entries, err := cat.Query(q)
			if err != nil {
				return err
			}
			a.log.WithField("count", len(entries)).Debug("Catalog query done")
			return writeEntries(a.stdout, entries, format)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&allFlags, "flag", "", "Require every flag, e.g. bool,string")
	flags.StringVar(&anyFlags, "any-flag", "", "Require at least one flag")
	flags.StringVar(&prefix, "prefix", "", "Local name prefix")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func writeEntries(w io.Writer, entries []*catalog.Entry, format report.Format) error {
	switch format {
	case report.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case report.FormatYAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Namespace, e.LocalName, e.Property, e.Type)
	}
	return tw.Flush()
}

// openInput returns stdin for no argument or "-".
func (a *app) openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return a.stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [FILE|-]",
		Short: "Check the attributes of an HTML fragment",
		Long:  "Check the attributes of an HTML fragment. A FILE ending in .epub or .zip is read as an archive and every markup document in it is checked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.namespace(webns.HTML5)
			if err != nil {
				return err
			}
			format, err := report.ParseFormat(a.v.GetString("output"))
			if err != nil {
				return err
			}
			opts := check.Options{
				Namespace: s,
				Charset:   a.v.GetString("charset"),
				Strict:    a.v.GetBool("strict"),
			}
			var r *report.Report
			if len(args) == 1 && isArchive(args[0]) {
				a.log.WithField("file", args[0]).Debug("Checking archive")
				r, err = check.CheckArchive(args[0], opts)
			} else {
				in, done, openErr := a.openInput(args)
				if openErr != nil {
					return openErr
				}
				defer done()
				r, err = check.Check(in, opts)
			}
			if err != nil {
				return err
			}
			a.log.WithField("messages", len(r.Messages)).Debug("Check finished")
			if err := r.Write(a.stdout, format); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			if r.FatalCount() > 0 {
				a.fail(exitFatal)
			} else if r.ErrorCount() > 0 {
				a.fail(exitFindings)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("charset", "", "Input encoding label (default utf-8)")
	flags.Bool("strict", false, "Report unknown tags as errors")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func isArchive(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".epub", ".zip":
		return true
	}
	return false
}

func newNormalizeCmd(a *app) *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "normalize [FILE|-]",
		Short: "Rewrite known attributes to their canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.namespace(webns.HTML5)
			if err != nil {
				return err
			}
			in, done, err := a.openInput(args)
			if err != nil {
				return err
			}
			defer done()

			out := a.stdout
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			res, err := normalize.Normalize(in, out, normalize.Options{
				Namespace: s,
				Charset:   a.v.GetString("charset"),
			})
			if err != nil {
				return err
			}
			for _, f := range res.Fixes {
				fmt.Fprintln(a.stderr, f)
			}
			a.log.WithField("fixes", len(res.Fixes)).Debug("Normalize finished")
			if res.AfterReport.ErrorCount() > 0 {
				fmt.Fprintf(a.stderr, "%d errors remain after normalizing\n", res.AfterReport.ErrorCount())
				a.fail(exitFindings)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("charset", "", "Input encoding label (default utf-8)")
	flags.StringVarP(&outFile, "out-file", "o", "", "Write output to FILE instead of stdout")
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "webattr %s\n", version)
			return err
		},
	}
}
