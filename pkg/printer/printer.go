package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/hbagdi/httpstat/pkg/header"
	"github.com/hbagdi/httpstat/pkg/model"
	"github.com/hbagdi/httpstat/pkg/palette"
	"github.com/hbagdi/httpstat/pkg/timing"
	"github.com/nwidger/jsoncolor"
)

type Printer struct {
	writer  io.Writer
	painter palette.Painter
}

type Opts struct {
	Writer  io.Writer
	Painter palette.Painter
}

func NewPrinter(opts Opts) Printer {
	return Printer{
		writer:  opts.Writer,
		painter: opts.Painter,
	}
}

type colorPrinter interface {
	SprintfFunc() func(format string, a ...interface{}) string
}

type noColor struct{}

func (n noColor) SprintfFunc() func(format string, a ...interface{}) string {
	return fmt.Sprintf
}

type colorName int

const (
	white colorName = iota
	cyan
	yellow
	grey
	blue
	green
)

var consoleColors = map[colorName]colorPrinter{}

func init() {
	for name, attrs := range map[colorName][]color.Attribute{
		white:  {color.FgWhite},
		cyan:   {color.FgCyan},
		yellow: {color.FgYellow},
		grey:   {color.FgBlack, color.Bold},
		blue:   {color.FgBlue},
		green:  {color.FgGreen},
	} {
		c := color.New(attrs...)
		// the painter decides whether color is wanted
		c.EnableColor()
		consoleColors[name] = c
	}
}

func (p Printer) colorPrinterFor(name colorName) colorPrinter {
	if !p.painter.Enabled() {
		return noColor{}
	}
	return consoleColors[name]
}

// PrintHeaders writes the colorized header block head.
func (p Printer) PrintHeaders(head string) error {
	lines := header.Colorize(header.Lines(head), p.painter)
	_, err := fmt.Fprintln(p.writer, strings.Join(lines, "\n"))
	return err
}

// PrintTiming writes the phase diagram followed by a blank line.
func (p Printer) PrintTiming(c model.Cumulative) error {
	_, err := fmt.Fprintln(p.writer, timing.Render(c, p.painter))
	return err
}

func (p Printer) PrintConnection(m model.RawMetrics) error {
	_, err := fmt.Fprintf(p.writer, "Connected to %s from %s\n",
		p.painter.Paint(palette.Cyan, hostPort(m.RemoteIP, m.RemotePort)),
		hostPort(m.LocalIP, m.LocalPort))
	return err
}

func hostPort(ip, port string) string {
	if strings.Contains(ip, ":") {
		return "[" + ip + "]:" + port
	}
	return ip + ":" + port
}

func (p Printer) PrintSpeed(m model.RawMetrics) error {
	_, err := fmt.Fprintf(p.writer, "speed_download: %s/s, speed_upload: %s/s\n",
		p.painter.Paint(palette.Cyan, rate(m.SpeedDownload)),
		p.painter.Paint(palette.Cyan, rate(m.SpeedUpload)))
	return err
}

func rate(bytesPerSecond float64) string {
	if bytesPerSecond <= 0 {
		return humanize.IBytes(0)
	}
	return humanize.IBytes(uint64(bytesPerSecond))
}

// PrintBody writes at most limit bytes of body. Complete JSON bodies are
// indented and colored.
func (p Printer) PrintBody(body []byte, limit int) error {
	if len(body) > limit {
		_, err := fmt.Fprintf(p.writer, "%s%s\n", body[:limit],
			p.painter.Paint(palette.Cyan, "..."))
		return err
	}
	if isJSON(body) {
		js, err := p.prettyJSON(body)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.writer, string(js))
		return err
	}
	_, err := fmt.Fprintln(p.writer, strings.TrimRight(string(body), "\r\n"))
	return err
}

// PrintSavedBody reports where a body was stored.
func (p Printer) PrintSavedBody(path string) error {
	_, err := fmt.Fprintf(p.writer, "Body stored in: %s\n", path)
	return err
}

func isJSON(b []byte) bool {
	var r interface{}
	err := json.Unmarshal(b, &r)
	return err == nil
}

func (p Printer) prettyJSON(js []byte) ([]byte, error) {
	formatter := p.formatter()

	if len(js) == 0 {
		return js, nil
	}

	var jsMap interface{}
	if err := json.Unmarshal(js, &jsMap); err != nil {
		return nil, err
	}

	dst, err := jsoncolor.MarshalIndentWithFormatter(jsMap, "", "  ", formatter)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

func (p Printer) formatter() *jsoncolor.Formatter {
	f := jsoncolor.NewFormatter()
	whiteP := p.colorPrinterFor(white)
	blueP := p.colorPrinterFor(blue)
	greenP := p.colorPrinterFor(green)
	greyP := p.colorPrinterFor(grey)
	yellowP := p.colorPrinterFor(yellow)

	f.ObjectColor = whiteP
	f.ArrayColor = whiteP
	f.FieldQuoteColor = whiteP
	f.CommaColor = whiteP
	f.StringQuoteColor = whiteP
	f.ColonColor = whiteP
	f.SpaceColor = whiteP

	f.FieldColor = blueP

	f.NullColor = greyP

	f.StringColor = greenP

	f.TrueColor = yellowP
	f.FalseColor = yellowP

	f.NumberColor = blueP
	return f
}
