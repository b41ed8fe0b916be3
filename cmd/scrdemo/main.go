// Command scrdemo exercises the screen package interactively: border styles,
// the color grid, region scrolling, and raw key codes.
package main

import (
	"flag"
	"fmt"
	"os"

	scr "github.com/pchapin/yexa"
)

func main() {
	backendName := flag.String("backend", "ansi", "rendering backend: ansi, tcell, or console")
	ascii := flag.Bool("ascii", false, "restrict borders to ASCII glyphs")
	flag.Parse()

	opts := []scr.Option{}
	switch *backendName {
	case "ansi":
		// The default backend.
	case "tcell":
		opts = append(opts, scr.WithBackend(scr.NewTcellBackend()))
	case "console":
		opts = append(opts, scr.WithBackend(scr.NewConsoleBackend(os.Stdout, os.Stdin)))
	default:
		fmt.Fprintf(os.Stderr, "unknown backend %q\n", *backendName)
		os.Exit(1)
	}
	if *ascii {
		opts = append(opts, scr.WithASCIIBoxes())
	}

	screen, err := scr.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Terminate()

	run(screen)
}

func run(screen *scr.Screen) {
	rows := screen.NumberOfRows()
	columns := screen.NumberOfColumns()

	title := scr.Attribute(scr.White | scr.RevBlue | scr.Bright)
	screen.Clear(scr.NewRegion(1, 1, columns, 1), title)
	screen.Print(1, 2, columns, title,
		"scrdemo  %dx%d  q or ESC quits, any other key is echoed", rows, columns)

	drawBorders(screen)
	drawColors(screen)

	logRegion := scr.NewRegion(rows-6, 2, columns-2, 5)
	screen.DrawBox(scr.NewRegion(rows-7, 1, columns, 7), scr.BoxSingle, scr.Attribute(scr.Cyan))
	screen.Print(rows-7, 3, columns, scr.Attribute(scr.Cyan|scr.Bright), " keys ")

	line := logRegion.Row + logRegion.Height - 1
	for {
		key := screen.KeyWait()
		if key == 'q' || key == scr.KeyEsc || key == -1 {
			return
		}

		screen.Scroll(scr.Up, logRegion, 1, scr.DefaultAttribute)
		if key > scr.XF {
			screen.Print(line, logRegion.Column, logRegion.Width,
				scr.DefaultAttribute, "extended key: %d (scan code %d)", key, key-scr.XF)
		} else if key >= 32 && key < 127 {
			screen.Print(line, logRegion.Column, logRegion.Width,
				scr.DefaultAttribute, "key: %q = %d", rune(key), key)
		} else {
			screen.Print(line, logRegion.Column, logRegion.Width,
				scr.DefaultAttribute, "control key: %d", key)
		}
	}
}

func drawBorders(screen *scr.Screen) {
	styles := []struct {
		name string
		box  scr.BoxType
	}{
		{"double", scr.BoxDouble},
		{"single", scr.BoxSingle},
		{"dark", scr.BoxDarkGraphic},
		{"light", scr.BoxLightGraphic},
		{"solid", scr.BoxSolid},
		{"ascii", scr.BoxASCII},
	}

	for i, style := range styles {
		column := 2 + i*12
		screen.DrawBox(scr.NewRegion(3, column, 10, 4), style.box, scr.Attribute(scr.Green))
		screen.Print(4, column+2, 8, scr.Attribute(scr.Green|scr.Bright), "%s", style.name)
	}
}

func drawColors(screen *scr.Screen) {
	colors := []scr.Attribute{
		scr.Black, scr.Blue, scr.Green, scr.Cyan,
		scr.Red, scr.Magenta, scr.Brown, scr.White,
	}

	screen.Print(8, 2, 40, scr.DefaultAttribute, "color grid (fg x bg):")
	for bg := 0; bg < 8; bg++ {
		for fg := 0; fg < 8; fg++ {
			attr := colors[fg] | colors[bg]<<4
			screen.Print(9+bg, 2+fg*4, 3, attr, " %d%d", fg, bg)
		}
	}
}
