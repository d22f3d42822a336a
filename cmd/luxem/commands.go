package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{IndentMultiple: 1}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "indent",
			Description: "indent characters per nesting level",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(count)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "luxem").
		WithSynopsis("luxem [opts] command [opts]").
		WithDescription("luxem is a tool for working with luxem documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return luxemMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			Ascii16Command(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("reformat luxem documents, streaming, without building a tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return luxemFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func Ascii16Command(mainCfg *MainConfig) *cli.Command {
	cfg := &Ascii16Config{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ascii16, "ascii16").
		WithAliases("a16").
		WithSynopsis("ascii16 enc|dec [files]").
		WithDescription("transcode arbitrary bytes to and from hex for embedding in primitives").
		WithSubs(
			cli.NewCommand("enc").
				WithSynopsis("enc [files]").
				WithDescription("hex-encode raw bytes").
				WithRun(func(cc *cli.Context, args []string) error {
					return ascii16Enc(cfg, cc, args)
				}),
			cli.NewCommand("dec").
				WithSynopsis("dec [files]").
				WithDescription("decode hex back to raw bytes").
				WithRun(func(cc *cli.Context, args []string) error {
					return ascii16Dec(cfg, cc, args)
				}))
}
