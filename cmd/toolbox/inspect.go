package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/RobinCoderZhao/toolbox-suite/pkg/colorconv"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/cronexpr"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/curlcmd"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/htmlfmt"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/jwttool"
	"github.com/spf13/cobra"
)

func cronCmd() *cobra.Command {
	var next int

	cmd := &cobra.Command{
		Use:   "cron <expression>",
		Short: "Explain a cron expression and show upcoming runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := args[0]
			desc, err := cronexpr.Describe(expr)
			if err != nil {
				return err
			}
			fmt.Println(desc)

			runs, err := cronexpr.NextRuns(expr, next, time.Now())
			if err != nil {
				return err
			}
			if len(runs) > 0 {
				fmt.Println("\nNext runs:")
				for _, r := range runs {
					fmt.Printf("  %s\n", r.Format("2006-01-02 15:04:05 MST"))
				}
			}
			record(loadConfig(), "cron", expr)
			return nil
		},
	}

	cmd.Flags().IntVarP(&next, "next", "n", 5, "Number of upcoming run times to show")
	return cmd
}

func curlCmd() *cobra.Command {
	var (
		toGo   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "curl [command]",
		Short: "Parse a curl command line",
		Long:  "Parses a curl invocation and re-emits it canonically, as JSON, or as a Go net/http snippet. Reads stdin when no argument is given.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = strings.Join(args, " ")
			} else {
				data, err := readInput("")
				if err != nil {
					return err
				}
				input = string(data)
			}

			req, err := curlcmd.Parse(input)
			if err != nil {
				return err
			}

			switch {
			case toGo:
				fmt.Print(req.ToGo())
			case asJSON:
				if err := printJSON(req); err != nil {
					return err
				}
			default:
				fmt.Println(req.String())
			}
			record(loadConfig(), "curl", fmt.Sprintf("%s %s", req.Method, req.URL))
			return nil
		},
	}

	cmd.Flags().BoolVar(&toGo, "go", false, "Emit a Go net/http snippet")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the parsed request as JSON")
	return cmd
}

func jwtCmd() *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:   "jwt <token>",
		Short: "Decode a JWT, optionally verifying its HMAC signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				decoded *jwttool.Decoded
				err     error
			)
			if secret != "" {
				decoded, err = jwttool.Verify(args[0], secret)
			} else {
				decoded, err = jwttool.Decode(args[0])
			}
			if err != nil {
				return err
			}

			out, err := decoded.PrettyJSON()
			if err != nil {
				return err
			}
			fmt.Println(out)

			if secret == "" {
				fmt.Println("note: signature not verified, pass --secret to verify")
			}
			record(loadConfig(), "jwt", fmt.Sprintf("alg=%s verified=%t", decoded.Algorithm, decoded.Verified))
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "HMAC secret to verify the signature with")
	return cmd
}

func colorCmd() *cobra.Command {
	var swatch string

	cmd := &cobra.Command{
		Use:   "color <value>...",
		Short: "Convert colors between hex, rgb() and hsl()",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := make([]colorconv.Color, 0, len(args))
			for _, arg := range args {
				c, err := colorconv.Parse(arg)
				if err != nil {
					return err
				}
				colors = append(colors, c)
				fmt.Printf("%s  %s  %s\n", c.Hex(), c.RGB(), c.HSL())
			}

			if swatch != "" {
				if err := colorconv.WriteSwatch(colors, swatch); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", swatch)
			}
			record(loadConfig(), "color", strings.Join(args, " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&swatch, "swatch", "", "Write a PNG swatch of the colors to this path")
	return cmd
}

func htmlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html",
		Short: "HTML formatting and text extraction",
	}

	var indent string
	fmtCmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print an HTML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			out, err := htmlfmt.Format(string(data), indent)
			if err != nil {
				return err
			}
			fmt.Print(out)
			record(loadConfig(), "html", fmt.Sprintf("formatted %d bytes", len(data)))
			return nil
		},
	}
	fmtCmd.Flags().StringVar(&indent, "indent", "\t", "Indent string")

	textCmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Extract readable text from an HTML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := argOrStdin(args)
			if err != nil {
				return err
			}
			if title := htmlfmt.Title(string(data)); title != "" {
				fmt.Printf("# %s\n\n", title)
			}
			fmt.Println(htmlfmt.ExtractText(string(data)))
			record(loadConfig(), "html", "extracted text")
			return nil
		},
	}

	cmd.AddCommand(fmtCmd, textCmd)
	return cmd
}
