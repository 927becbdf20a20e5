package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/alanbriolat/youtube-helper"
	"github.com/alanbriolat/youtube-helper/async"
	"github.com/alanbriolat/youtube-helper/provider/youtube"
	_ "github.com/alanbriolat/youtube-helper/providers"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()
	zap.RedirectStdLog(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = youtube_helper.WithLogger(ctx, logger)

	app := newApp()
	result := async.Run(func() error { return app.RunContext(ctx, os.Args) })

	select {
	case err = <-result:
		if err != nil {
			logger.Fatal(err.Error())
		}
	case <-ctx.Done():
		logger.Error(ctx.Err().Error())
		stop()
	}
}

func paramFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:  "param",
		Usage: "add embed URL query parameter `KEY=VALUE` (or just `KEY` for a flag)",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "youtube-resource",
		Usage:     "validate YouTube video IDs and URLs, and build canonical and embed URLs",
		ArgsUsage: "ID|URL...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Value: youtube_helper.DefaultOutputTemplate,
				Usage: "render each resource with Go template `TEMPLATE`",
			},
		},
		Action: show,
		Commands: []*cli.Command{
			{
				Name:      "url",
				Usage:     "print the watch URL",
				ArgsUsage: "ID|URL...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "variant",
						Value: "default",
						Usage: "one of default, alias, mobile, short",
					},
				},
				Action: buildURL,
			},
			{
				Name:      "embed",
				Usage:     "print the embed URL",
				ArgsUsage: "ID|URL...",
				Flags:     []cli.Flag{paramFlag()},
				Action: forEachResource(func(c *cli.Context, r *youtube.Resource) (string, error) {
					return r.BuildEmbedURL(parseValues(c.StringSlice("param"))), nil
				}),
			},
			{
				Name:      "html",
				Usage:     "print the embed markup",
				ArgsUsage: "ID|URL...",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "width", Usage: "iframe width"},
					&cli.IntFlag{Name: "height", Usage: "iframe height"},
					&cli.StringFlag{Name: "class", Usage: "iframe CSS class"},
					&cli.StringSliceFlag{Name: "attr", Usage: "add iframe attribute `KEY=VALUE` (or just `KEY` for a flag)"},
					paramFlag(),
				},
				Action: forEachResource(func(c *cli.Context, r *youtube.Resource) (string, error) {
					return r.BuildEmbedHTML(htmlAttributes(c), parseValues(c.StringSlice("param"))), nil
				}),
			},
			{
				Name:  "hosts",
				Usage: "list the recognised hosts",
				Action: func(c *cli.Context) error {
					hosts := youtube.ValidHosts().ToSlice()
					sort.Strings(hosts)
					_, err := fmt.Fprintln(c.App.Writer, strings.Join(hosts, "\n"))
					return err
				},
			},
		},
		HideHelpCommand: true,
	}
}

func show(c *cli.Context) error {
	config, err := youtube_helper.NewOutputConfigFromString(c.String("format"))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	for _, s := range c.Args().Slice() {
		m, err := match(c.Context, s)
		if err != nil {
			return err
		}
		output, err := config.Render(m)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if _, err := fmt.Fprintln(c.App.Writer, output); err != nil {
			return err
		}
	}
	return nil
}

func buildURL(c *cli.Context) error {
	var build func(r *youtube.Resource) string
	switch variant := c.String("variant"); variant {
	case "default":
		build = (*youtube.Resource).BuildDefaultURL
	case "alias":
		build = (*youtube.Resource).BuildAliasURL
	case "mobile":
		build = (*youtube.Resource).BuildMobileURL
	case "short":
		build = (*youtube.Resource).BuildShortURL
	default:
		return fmt.Errorf("unknown URL variant %q", variant)
	}
	return forEachResource(func(_ *cli.Context, r *youtube.Resource) (string, error) {
		return build(r), nil
	})(c)
}

func forEachResource(f func(*cli.Context, *youtube.Resource) (string, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("expected at least one ID or URL")
		}
		for _, s := range c.Args().Slice() {
			m, err := match(c.Context, s)
			if err != nil {
				return err
			}
			r, ok := m.Resource.(*youtube.Resource)
			if !ok {
				return fmt.Errorf("%s: not a YouTube resource", s)
			}
			output, err := f(c, r)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(c.App.Writer, output); err != nil {
				return err
			}
		}
		return nil
	}
}

func match(ctx context.Context, s string) (*youtube_helper.Match, error) {
	logger := youtube_helper.Logger(ctx).Sugar()
	m, err := youtube_helper.DefaultProviderRegistry.Match(s)
	if err != nil {
		return nil, fmt.Errorf("match failed: %w", err)
	}
	logger.Debugf("Matched %s with provider %s: %s", s, m.ProviderName, m.Resource.ID())
	return m, nil
}

func htmlAttributes(c *cli.Context) *youtube.Values {
	attributes := parseValues(c.StringSlice("attr"))
	if c.IsSet("width") {
		attributes.Set("width", youtube.Int(c.Int("width")))
	}
	if c.IsSet("height") {
		attributes.Set("height", youtube.Int(c.Int("height")))
	}
	if c.IsSet("class") {
		attributes.Set("class", youtube.Text(c.String("class")))
	}
	return attributes
}

// parseValues turns "key=value" into a text value and a bare "key" into a flag.
func parseValues(pairs []string) *youtube.Values {
	values := youtube.NewValues()
	lo.ForEach(pairs, func(pair string, _ int) {
		if key, value, found := strings.Cut(pair, "="); found {
			values.Set(key, youtube.Text(value))
		} else {
			values.Set(pair, youtube.Flag())
		}
	})
	return values
}
