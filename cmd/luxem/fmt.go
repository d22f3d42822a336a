package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/luxem-format/go-luxem/encode"
	"github.com/luxem-format/go-luxem/parse"
)

// luxemFmt pipes parser events straight into a writer, one document per
// input, so arbitrarily large documents reformat in constant memory.
func luxemFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(_ string, r io.Reader) error {
		opts := append([]encode.Option{encode.WriteTo(cc.Out)}, cfg.encOpts(cc.Out)...)
		w := encode.New(opts...)
		if err := parse.New(w).FeedReader(r, nil, nil); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cc.Out)
		return err
	})
}
