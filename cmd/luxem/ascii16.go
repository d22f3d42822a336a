package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/luxem-format/go-luxem/ascii16"
)

func ascii16Enc(cfg *Ascii16Config, cc *cli.Context, args []string) error {
	return eachInput(args, func(_ string, r io.Reader) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, ascii16.Encode(data))
		return err
	})
}

func ascii16Dec(cfg *Ascii16Config, cc *cli.Context, args []string) error {
	return eachInput(args, func(_ string, r io.Reader) error {
		text, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		data, err := ascii16.Decode(strings.TrimSpace(string(text)))
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(data)
		return err
	})
}
