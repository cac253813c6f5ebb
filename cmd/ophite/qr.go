package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite/pkg/imaging"
)

func newQRCmd(a *app) *cobra.Command {
	var (
		out     string
		size    int
		dataURI bool
	)
	cmd := &cobra.Command{
		Use:   "qr <content>",
		Short: "Render content as a QR code",
		Long: `Render content as a QR code. By default the code is drawn on the terminal;
--out writes a PNG file and --data-uri prints a data URI for HTML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" && !dataURI {
				s, err := imaging.QRCodeText(args[0])
				if err != nil {
					return err
				}
				writeln(cmd.OutOrStdout(), s)
				return nil
			}

			png, err := imaging.QRCodePNG(args[0], size)
			if err != nil {
				return err
			}
			if dataURI {
				writeln(cmd.OutOrStdout(), imaging.DataURI(png, imaging.PNG))
			}
			if out != "" {
				if err := os.WriteFile(out, png, 0o644); err != nil {
					return err
				}
				a.log.Info("wrote QR code", "path", out, "bytes", len(png))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write a PNG file")
	cmd.Flags().IntVar(&size, "size", 256, "PNG width and height in pixels")
	cmd.Flags().BoolVar(&dataURI, "data-uri", false, "Print a PNG data URI")
	return cmd
}
