package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RobinCoderZhao/toolbox-suite/pkg/convert"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/jsonquery"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/jsonschema"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/sqlfmt"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/structgen"
	"github.com/spf13/cobra"
)

func jsonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "JSON formatting, validation, schema and query tools",
	}

	var indent int
	fmtCmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			out, err := convert.FormatJSON(data, spaces(indent))
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			record(loadConfig(), "json", fmt.Sprintf("formatted %d bytes", len(data)))
			return nil
		},
	}
	fmtCmd.Flags().IntVar(&indent, "indent", 2, "Indent width in spaces")

	minCmd := &cobra.Command{
		Use:   "min [file]",
		Short: "Minify a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			out, err := convert.MinifyJSON(data)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			record(loadConfig(), "json", fmt.Sprintf("minified %d -> %d bytes", len(data), len(out)))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that a JSON document is syntactically valid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			if err := convert.ValidateJSON(data); err != nil {
				return err
			}
			fmt.Println("valid")
			return nil
		},
	}

	var title string
	inferCmd := &cobra.Command{
		Use:   "infer [file]",
		Short: "Infer a JSON Schema from a sample document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			out, err := jsonschema.Infer(data, title)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			record(loadConfig(), "json", "inferred schema")
			return nil
		},
	}
	inferCmd.Flags().StringVar(&title, "title", "", "Schema title")

	schemaCmd := &cobra.Command{
		Use:   "schema <schema> [document]",
		Short: "Validate a JSON document against a schema",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read schema: %w", err)
			}
			data, err := argOrStdin(args[1:])
			if err != nil {
				return err
			}
			violations, err := jsonschema.Validate(schema, data)
			if err != nil {
				return err
			}
			if len(violations) == 0 {
				fmt.Println("valid")
				return nil
			}
			for _, v := range violations {
				fmt.Printf("%s: %s\n", v.Field, v.Description)
			}
			cmd.SilenceUsage = true
			return fmt.Errorf("%d violation(s)", len(violations))
		},
	}

	var pretty bool
	queryCmd := &cobra.Command{
		Use:   "query <path> [file]",
		Short: "Extract a value with a gjson path expression",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args[1:])
			if err != nil {
				return err
			}
			var out string
			if pretty {
				out, err = jsonquery.GetPretty(data, args[0])
			} else {
				out, err = jsonquery.Get(data, args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println(out)
			record(loadConfig(), "json", fmt.Sprintf("query %q", args[0]))
			return nil
		},
	}
	queryCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the extracted value")

	var typeName string
	totypeCmd := &cobra.Command{
		Use:   "totype [file]",
		Short: "Generate Go struct definitions from a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			out, err := structgen.Generate(data, typeName)
			if err != nil {
				return err
			}
			fmt.Print(out)
			record(loadConfig(), "json", fmt.Sprintf("generated type %s", typeName))
			return nil
		},
	}
	totypeCmd.Flags().StringVar(&typeName, "name", "Root", "Name of the top-level struct")

	cmd.AddCommand(fmtCmd, minCmd, validateCmd, inferCmd, schemaCmd, queryCmd, totypeCmd)
	return cmd
}

func yamlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yaml",
		Short: "YAML conversion tools",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "tojson [file]",
		Short: "Convert YAML to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			out, err := convert.YAMLToJSON(data)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			record(loadConfig(), "yaml", "converted to json")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "fromjson [file]",
		Short: "Convert JSON to YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			out, err := convert.JSONToYAML(data)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			record(loadConfig(), "yaml", "converted from json")
			return nil
		},
	})
	return cmd
}

func xmlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xml",
		Short: "XML formatting and validation",
	}

	var indent int
	fmtCmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print an XML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			out, err := convert.FormatXML(data, spaces(indent))
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			record(loadConfig(), "xml", fmt.Sprintf("formatted %d bytes", len(data)))
			return nil
		},
	}
	fmtCmd.Flags().IntVar(&indent, "indent", 2, "Indent width in spaces")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that an XML document is well-formed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			if err := convert.ValidateXML(data); err != nil {
				return err
			}
			fmt.Println("valid")
			return nil
		},
	}

	cmd.AddCommand(fmtCmd, validateCmd)
	return cmd
}

func sqlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sql",
		Short: "SQL formatting",
	}

	var (
		indent    int
		lowercase bool
	)
	fmtCmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Format a SQL query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			opts := cfg.SQL
			if cmd.Flags().Changed("indent") {
				opts.Indent = spaces(indent)
			}
			if cmd.Flags().Changed("lowercase") {
				opts.Uppercase = !lowercase
			}
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			fmt.Println(sqlfmt.Format(string(data), opts))
			record(cfg, "sql", fmt.Sprintf("formatted %d bytes", len(data)))
			return nil
		},
	}
	fmtCmd.Flags().IntVar(&indent, "indent", 2, "Indent width in spaces")
	fmtCmd.Flags().BoolVar(&lowercase, "lowercase", false, "Keep keywords lowercase")

	cmd.AddCommand(fmtCmd)
	return cmd
}

func spaces(n int) string {
	if n < 1 {
		n = 2
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
