package main

import (
	"fmt"
	"strings"

	"github.com/RobinCoderZhao/toolbox-suite/pkg/password"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/qrgen"
	"github.com/RobinCoderZhao/toolbox-suite/pkg/uuidtool"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func uuidCmd() *cobra.Command {
	var (
		ver       int
		count     int
		inspect   string
		namespace string
		name      string
	)

	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate and inspect UUIDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			if inspect != "" {
				info, err := uuidtool.Inspect(inspect)
				if err != nil {
					return err
				}
				return printJSON(info)
			}

			if !cmd.Flags().Changed("version") {
				ver = cfg.UUID.Version
			}

			if ver == 5 {
				if namespace == "" || name == "" {
					return fmt.Errorf("v5 requires --namespace and --name")
				}
				id, err := uuidtool.NewV5(namespace, name)
				if err != nil {
					return err
				}
				fmt.Println(id)
				record(cfg, "uuid", "generated 1 v5")
				return nil
			}

			ids, err := uuidtool.Generate(ver, count)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			record(cfg, "uuid", fmt.Sprintf("generated %d v%d", len(ids), ver))
			return nil
		},
	}

	cmd.Flags().IntVarP(&ver, "version", "v", 4, "UUID version: 1, 4, 5 or 7")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs to generate")
	cmd.Flags().StringVar(&inspect, "inspect", "", "Parse a UUID and show its version, variant and timestamp")
	cmd.Flags().StringVar(&namespace, "namespace", "", "v5 namespace: dns, url, oid, x500 or a UUID")
	cmd.Flags().StringVar(&name, "name", "", "v5 name to hash")
	return cmd
}

func passwordCmd() *cobra.Command {
	var (
		length    int
		noLower   bool
		noUpper   bool
		noDigits  bool
		noSymbols bool
		noAmbig   bool
		count     int
		hash      string
		verify    string
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate passwords and bcrypt hashes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			if hash != "" {
				out, err := password.Hash(hash, bcrypt.DefaultCost)
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}
			if verify != "" {
				if len(args) != 1 {
					return fmt.Errorf("usage: password --verify <hash> <password>")
				}
				if password.Verify(verify, args[0]) {
					fmt.Println("match")
					return nil
				}
				cmd.SilenceUsage = true
				return fmt.Errorf("no match")
			}

			opts := cfg.Password
			if cmd.Flags().Changed("length") {
				opts.Length = length
			}
			if noLower {
				opts.Lower = false
			}
			if noUpper {
				opts.Upper = false
			}
			if noDigits {
				opts.Digits = false
			}
			if noSymbols {
				opts.Symbols = false
			}
			if noAmbig {
				opts.ExcludeAmbiguous = true
			}

			for i := 0; i < count; i++ {
				pw, err := password.Generate(opts)
				if err != nil {
					return err
				}
				fmt.Println(pw)
			}
			bits := password.Entropy(opts)
			fmt.Printf("entropy: %.1f bits (%s)\n", bits, password.Strength(bits))
			record(cfg, "password", fmt.Sprintf("generated %d, %.0f bits", count, bits))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 16, "Password length")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "Exclude lowercase letters")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "Exclude uppercase letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "Exclude digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "Exclude symbols")
	cmd.Flags().BoolVar(&noAmbig, "no-ambiguous", false, "Exclude look-alike characters (0O1lI)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passwords")
	cmd.Flags().StringVar(&hash, "hash", "", "Hash the given password with bcrypt instead of generating")
	cmd.Flags().StringVar(&verify, "verify", "", "Verify a password (positional) against this bcrypt hash")
	return cmd
}

func qrCmd() *cobra.Command {
	var (
		out   string
		size  int
		level string
		text  bool
	)

	cmd := &cobra.Command{
		Use:   "qr <content>",
		Short: "Generate QR codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if !cmd.Flags().Changed("size") {
				size = cfg.QR.Size
			}
			if !cmd.Flags().Changed("level") {
				level = cfg.QR.Level
			}
			lv := qrgen.Level(strings.ToLower(level))

			if text {
				art, err := qrgen.Text(args[0], lv)
				if err != nil {
					return err
				}
				fmt.Print(art)
				record(cfg, "qr", "text rendering")
				return nil
			}

			if err := qrgen.WritePNG(args[0], out, size, lv); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%dx%d)\n", out, size, size)
			record(cfg, "qr", fmt.Sprintf("png %s", out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "qr.png", "Output PNG path")
	cmd.Flags().IntVar(&size, "size", 256, "Image size in pixels")
	cmd.Flags().StringVar(&level, "level", "medium", "Error correction: low, medium, high, highest")
	cmd.Flags().BoolVar(&text, "text", false, "Render to the terminal instead of a PNG")
	return cmd
}
